// README: Route search endpoint.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"sunuguide/internal/modules/routesearch"
)

type RouteHandler struct {
	engine *routesearch.Engine
}

func NewRouteHandler(engine *routesearch.Engine) *RouteHandler {
	return &RouteHandler{engine: engine}
}

type searchRequest struct {
	Depart     string `json:"depart" binding:"required"`
	Arrivee    string `json:"arrivee" binding:"required"`
	Preference string `json:"preference"`
}

type optionView struct {
	TransportType    string  `json:"transportType"`
	Departure        string  `json:"departure"`
	Arrival          string  `json:"arrival"`
	Price            int64   `json:"price"`
	Speed            float64 `json:"speed"`
	Comfort          float64 `json:"comfort"`
	Score            float64 `json:"score"`
	DistanceKm       float64 `json:"distanceKm"`
	DurationMin      float64 `json:"durationMin"`
	IsTaxiSuggestion bool    `json:"isTaxiSuggestion"`
	DistanceSource   string  `json:"distanceSource,omitempty"`
}

type searchResponse struct {
	Success      bool           `json:"success"`
	Options      []optionView   `json:"options"`
	Corrections  map[string]any `json:"corrections"`
	TotalOptions int            `json:"totalOptions"`
	Message      string         `json:"message,omitempty"`
}

func (h *RouteHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "depart and arrivee are required")
		return
	}

	res := h.engine.FindRoutes(c.Request.Context(), req.Depart, req.Arrivee, req.Preference)

	options := lo.Map(res.Options, func(o routesearch.Option, _ int) optionView {
		return optionView{
			TransportType:    o.TransportType,
			Departure:        o.Departure,
			Arrival:          o.Arrival,
			Price:            o.Price,
			Speed:            o.Speed,
			Comfort:          o.Comfort,
			Score:            o.Score,
			DistanceKm:       o.DistanceKm,
			DurationMin:      o.DurationMin,
			IsTaxiSuggestion: o.TaxiSuggestion,
			DistanceSource:   string(o.DistanceSource),
		}
	})

	writeJSON(c, http.StatusOK, searchResponse{
		Success:      res.Success,
		Options:      options,
		Corrections:  res.Corrections,
		TotalOptions: len(options),
		Message:      res.Message,
	})
}
