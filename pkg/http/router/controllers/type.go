package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/lintang-b-s/guidancex/pkg/util"
)

type envelope map[string]interface{}

func (api *guidanceAPI) writeJSON(w http.ResponseWriter, status int, data envelope,
	headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(js)

	return nil
}

func (api *guidanceAPI) errorResponse(w http.ResponseWriter, r *http.Request,
	status int, message interface{}) {
	env := envelope{"error": message}

	if err := api.writeJSON(w, status, env, nil); err != nil {
		api.log.Sugar().Errorf("failed writing error response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *guidanceAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (api *guidanceAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, err.Error())
}

func (api *guidanceAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Sugar().Errorf("internal server error: %v", err)
	api.errorResponse(w, r, http.StatusInternalServerError, util.MessageInternalServerError)
}

// getStatusCode maps the wrapped service error code onto the http status.
func (api *guidanceAPI) getStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	var serviceErr *util.Error
	if errors.As(err, &serviceErr) {
		switch serviceErr.Code() {
		case util.ErrNotFound:
			api.NotFoundResponse(w, r, err)
			return
		case util.ErrBadParamInput:
			api.BadRequestResponse(w, r, err)
			return
		}
	}
	api.ServerErrorResponse(w, r, err)
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf("%s", e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
