package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/guidancex/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/guidancex/pkg/http/usecases"
	"go.uber.org/zap"
)

type guidanceAPI struct {
	guidanceService GuidanceService
	log             *zap.Logger
}

func New(guidanceService GuidanceService, log *zap.Logger) *guidanceAPI {
	return &guidanceAPI{
		guidanceService: guidanceService,
		log:             log,
	}
}

func (api *guidanceAPI) Routes(group *helper.RouteGroup) {
	group.GET("/classifyIntersection", api.classifyIntersection)
	group.POST("/classifyTurns", api.classifyTurns)
}

func (api *guidanceAPI) validateRequest(w http.ResponseWriter, r *http.Request,
	request interface{}) bool {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return false
	}
	return true
}

// classifyIntersection godoc
//
//	@Summary		classify the intersection nearest to a position.
//	@Description	snap (lat, lon, bearing) to the best matching via edge and return its classified outgoing roads.
//	@Param			lat		query	float64	true	"latitude"
//	@Param			lon		query	float64	true	"longitude"
//	@Param			bearing	query	float64	true	"direction of travel in degrees"
//	@Produce		json
//	@Router			/classifyIntersection [get]
func (api *guidanceAPI) classifyIntersection(w http.ResponseWriter, r *http.Request,
	p httprouter.Params) {
	var (
		request classifyIntersectionRequest
		err     error
	)

	query := r.URL.Query()

	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}
	request.Bearing, err = strconv.ParseFloat(query.Get("bearing"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("bearing is required and must be a valid float"))
		return
	}
	if !api.validateRequest(w, r, request) {
		return
	}

	roads, err := api.guidanceService.ClassifyIntersection(
		request.Lat, request.Lon, request.Bearing)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	_ = api.writeJSON(w, http.StatusOK, envelope{"data": newClassifyResponse(roads)}, nil)
}

// classifyTurns godoc
//
//	@Summary		classify an intersection described in the request body.
//	@Description	classify an ad-hoc intersection given as a via road plus outgoing roads with angles, classes, names and entry flags.
//	@Accept			json
//	@Produce		json
//	@Router			/classifyTurns [post]
func (api *guidanceAPI) classifyTurns(w http.ResponseWriter, r *http.Request,
	p httprouter.Params) {
	var request classifyTurnsRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if !api.validateRequest(w, r, request) {
		return
	}

	roads := make([]usecases.RawRoad, 0, len(request.Roads))
	for _, dto := range request.Roads {
		roads = append(roads, dto.toRawRoad())
	}

	classified, err := api.guidanceService.ClassifyTurns(request.Via.toRawRoad(), roads)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	_ = api.writeJSON(w, http.StatusOK, envelope{"data": newClassifyResponse(classified)}, nil)
}
