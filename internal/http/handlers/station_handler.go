// README: Station list and model info endpoints.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sunuguide/internal/modules/routesearch"
)

type StationHandler struct {
	engine *routesearch.Engine
}

func NewStationHandler(engine *routesearch.Engine) *StationHandler {
	return &StationHandler{engine: engine}
}

func (h *StationHandler) List(c *gin.Context) {
	stations := h.engine.Stations()
	writeJSON(c, http.StatusOK, gin.H{
		"stations": stations,
		"count":    len(stations),
	})
}

type modelInfoView struct {
	Name              string         `json:"name"`
	Version           string         `json:"version"`
	TotalRoutes       int            `json:"totalRoutes"`
	AvailableStations int            `json:"availableStations"`
	TransportTypes    map[string]int `json:"transportTypes"`
	PriceRange        priceRangeView `json:"priceRange"`
}

type priceRangeView struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
	Avg int64 `json:"avg"`
}

func (h *StationHandler) ModelInfo(c *gin.Context) {
	info := h.engine.Info()
	writeJSON(c, http.StatusOK, modelInfoView{
		Name:              info.Name,
		Version:           info.Version,
		TotalRoutes:       info.TotalRoutes,
		AvailableStations: info.AvailableStations,
		TransportTypes:    info.TransportTypes,
		PriceRange: priceRangeView{
			Min: info.PriceMin,
			Max: info.PriceMax,
			Avg: info.PriceAvg,
		},
	})
}
