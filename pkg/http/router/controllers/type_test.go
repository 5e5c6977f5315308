package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lintang-b-s/guidancex/pkg/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetStatusCode(t *testing.T) {
	api := New(nil, zap.NewNop())

	testCases := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "wrapped not found",
			err:  util.WrapErrorf(nil, util.ErrNotFound, "no road found near the query point"),
			want: http.StatusNotFound,
		},
		{
			name: "wrapped bad param",
			err:  util.WrapErrorf(nil, util.ErrBadParamInput, "intersection has no roads"),
			want: http.StatusBadRequest,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/classifyIntersection", nil)

			api.getStatusCode(w, r, tt.err)
			require.Equal(t, tt.want, w.Code)
		})
	}
}

func TestWriteJSONEnvelope(t *testing.T) {
	api := New(nil, zap.NewNop())
	w := httptest.NewRecorder()

	err := api.writeJSON(w, http.StatusOK, envelope{"data": "ok"}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.JSONEq(t, `{"data":"ok"}`, w.Body.String())
}
