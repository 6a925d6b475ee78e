package site

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/neuralarc/site/contact"
	"github.com/neuralarc/site/views"
)

// MsgRateLimited is shown when a client exceeds the submit limit.
const MsgRateLimited = "Too many messages. Please wait a minute and try again."

const outcomeRateLimited contact.Outcome = "rate_limited"

type apiResponse struct {
	OK     bool     `json:"ok"`
	Error  string   `json:"error,omitempty"`
	Fields []string `json:"fields,omitempty"`
}

// handleContact accepts the contact form. Script-driven requests get the
// re-rendered form back; plain form posts are redirected to the landing
// page with the result kept in a flash.
func (a *App) handleContact(c echo.Context) error {
	var f contact.Fields
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	if f.Validate() == nil && !a.allow(c) {
		return a.respondForm(c, http.StatusTooManyRequests, contact.FormState{Fields: f, Error: MsgRateLimited})
	}

	st, err := a.submit(c, submitKey(c), f)
	if errors.Is(err, contact.ErrInFlight) && !isHTMX(c) {
		// the pending submission owns the flash
		return c.Redirect(http.StatusSeeOther, "/#contact")
	}
	return a.respondForm(c, statusFor(err), st)
}

func (a *App) respondForm(c echo.Context, code int, st contact.FormState) error {
	if isHTMX(c) {
		return renderNode(c, code, views.ContactForm(st, CsrfToken(c)))
	}
	if err := setFormFlash(c, st); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/#contact")
}

// handleAPIContact is the JSON form of handleContact.
func (a *App) handleAPIContact(c echo.Context) error {
	var f contact.Fields
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: "invalid request body"})
	}

	if f.Validate() == nil && !a.allow(c) {
		return c.JSON(http.StatusTooManyRequests, apiResponse{Error: MsgRateLimited})
	}

	st, err := a.submit(c, "ip:"+c.RealIP(), f)
	resp := apiResponse{OK: err == nil, Error: st.Error}
	var verr *contact.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}
	return c.JSON(statusFor(err), resp)
}

// allow charges one attempt against the client's budget. Only submissions
// that pass validation are charged.
func (a *App) allow(c echo.Context) bool {
	ip := c.RealIP()
	if a.limiter.Allow(ip) {
		return true
	}
	a.metrics.observeSubmission(outcomeRateLimited)
	secs := int(math.Ceil(a.limiter.RetryAfter(ip).Seconds()))
	c.Response().Header().Set("Retry-After", strconv.Itoa(max(1, secs)))
	return false
}

func (a *App) submit(c echo.Context, key string, f contact.Fields) (contact.FormState, error) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), a.Config.SubmitTimeout)
	defer cancel()
	return a.Contact.Submit(ctx, key, f)
}

// submitKey identifies one visitor's form: the CSRF token is per browser,
// the IP is the fallback.
func submitKey(c echo.Context) string {
	if tok := CsrfToken(c); tok != "" {
		return "csrf:" + tok
	}
	return "ip:" + c.RealIP()
}

func statusFor(err error) int {
	var verr *contact.ValidationError
	var rerr *contact.RemoteError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, contact.ErrInFlight):
		return http.StatusConflict
	case errors.As(err, &rerr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
