package mockapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wintryx/progressmaker/pkg/apierror"
	"github.com/wintryx/progressmaker/pkg/dashboard"
	"github.com/wintryx/progressmaker/pkg/forms"
	"github.com/wintryx/progressmaker/pkg/validator"
)

const (
	SessionExpiredMessage  = "Session expired. Please log in again."
	SimulatedErrorMessage  = "Simulated API failure for debugging purposes."
	SimulatedSuccessText   = "Simulated success notification."
	ValidationFailedText   = "Please correct the highlighted fields."
	DefaultUploadFilename  = "uploaded-file.jpg"
	maxBodyBytes           = 1 << 20
	maxUploadMemory        = 10 << 20
	defaultSubmitSuccess   = "Form submitted successfully!"
	itemNotFoundMessage    = "Item not found."
	formNotFoundMessage    = "Form not found."
	routeNotFoundMessage   = "Resource not found."
	invalidJSONBodyMessage = "Request body must be a JSON object."
)

// UploadResult is returned by the upload endpoint.
type UploadResult struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Filename  string    `json:"filename"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *API) listItems(r *http.Request) Response {
	if r.URL.Query().Get("debug") == string(apierror.CodeDashboardUnauthorized) {
		return Error(apierror.New(http.StatusUnauthorized, apierror.CodeDashboardUnauthorized, SessionExpiredMessage))
	}

	a.mu.RLock()
	items := append([]dashboard.ItemDTO(nil), a.items...)
	a.mu.RUnlock()
	return JSON(http.StatusOK, items)
}

func (a *API) getItem(r *http.Request) Response {
	id := chi.URLParam(r, "id")

	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, item := range a.items {
		if item.ID == id {
			return JSON(http.StatusOK, item)
		}
	}
	return Error(apierror.New(http.StatusNotFound, apierror.CodeNotFound, itemNotFoundMessage))
}

func (a *API) getForm(r *http.Request) Response {
	s, ok := a.schema(chi.URLParam(r, "id"))
	if !ok {
		return Error(apierror.New(http.StatusNotFound, apierror.CodeNotFound, formNotFoundMessage))
	}
	return JSON(http.StatusOK, s.Config)
}

func (a *API) submitForm(r *http.Request) Response {
	s, ok := a.schema(chi.URLParam(r, "id"))
	if !ok {
		return Error(apierror.New(http.StatusNotFound, apierror.CodeNotFound, formNotFoundMessage))
	}

	values, err := decodeValues(r)
	if err != nil {
		return Error(apierror.New(http.StatusBadRequest, apierror.CodeBadRequest, invalidJSONBodyMessage))
	}

	if errs := validator.ExtractValidationErrors(s.Validate(values)); errs != nil {
		apiErr := apierror.New(http.StatusUnprocessableEntity, apierror.CodeValidation, ValidationFailedText)
		apiErr.Errors = errs.Map()
		return Error(apiErr)
	}

	msg := s.SuccessMessage
	if msg == "" {
		msg = defaultSubmitSuccess
	}
	return JSON(http.StatusOK, forms.SubmitResult{Message: msg})
}

func (a *API) upload(r *http.Request) Response {
	filename := DefaultUploadFilename
	if err := r.ParseMultipartForm(maxUploadMemory); err == nil {
		if _, header, err := r.FormFile("file"); err == nil && header.Filename != "" {
			filename = header.Filename
		}
	}

	id := a.newID()
	return JSON(http.StatusCreated, UploadResult{
		ID:        id,
		URL:       "https://picsum.photos/seed/" + id + "/200",
		Filename:  filename,
		Timestamp: a.now().UTC(),
	})
}

func (a *API) debugError(*http.Request) Response {
	return Error(apierror.New(http.StatusInternalServerError, apierror.CodeDashboardItemsLoadFailed, SimulatedErrorMessage))
}

func (a *API) debugUnauthorized(*http.Request) Response {
	return Error(apierror.New(http.StatusUnauthorized, apierror.CodeUnauthorized, SessionExpiredMessage))
}

func (a *API) debugSuccess(*http.Request) Response {
	return JSON(http.StatusOK, map[string]any{
		"status":  http.StatusOK,
		"message": SimulatedSuccessText,
	})
}

func (a *API) notFound(*http.Request) Response {
	return Error(apierror.New(http.StatusNotFound, apierror.CodeNotFound, routeNotFoundMessage))
}

func (a *API) schema(id string) (schema, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s, ok := a.schemas[id]
	return s, ok
}

func decodeValues(r *http.Request) (forms.Values, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return forms.Values{}, nil
	}
	var values forms.Values
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&values); err != nil {
		return nil, errors.Join(ErrInvalidBody, err)
	}
	if values == nil {
		values = forms.Values{}
	}
	return values, nil
}
