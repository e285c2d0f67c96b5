package controller

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"weathercompare/internal/climate"
	"weathercompare/internal/modules/comparison/types"
	"weathercompare/internal/modules/comparison/views"
	"weathercompare/internal/share"
	"weathercompare/internal/utils"
	"weathercompare/internal/viewstate"
)

func (c *comparisonControllerImpl) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	c.renderHTML(w, r, "dashboard", views.RenderDashboard)
}

func (c *comparisonControllerImpl) handleComparisonPartial(w http.ResponseWriter, r *http.Request) {
	c.renderHTML(w, r, "comparison partial", views.RenderComparisonPartial)
}

// renderHTML decodes the state, derives its view and renders it with render.
func (c *comparisonControllerImpl) renderHTML(w http.ResponseWriter, r *http.Request, name string, render func(io.Writer, *views.DashboardData) error) {
	s, err := c.decodeState(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	v, err := c.derive(s)
	if err != nil {
		slog.Error(name+": derive view failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to derive view")
		return
	}
	data, err := c.buildDashboardData(v)
	if err != nil {
		slog.Error(name+": build view model failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to build page")
		return
	}
	var buf bytes.Buffer
	if err := render(&buf, data); err != nil {
		slog.Error(name+" template render failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	utils.WriteBytes(w, http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (c *comparisonControllerImpl) handleCities(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, c.dataset.Cities())
}

func (c *comparisonControllerImpl) handleChart(w http.ResponseWriter, r *http.Request) {
	s, err := c.decodeState(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, types.ChartResponse{
		Period:      s.Period,
		PeriodLabel: s.Period.Label(),
		Unit:        s.Unit,
		Records:     climate.BuildChartRecords(c.dataset, s.Period, s.Unit),
	})
}

func (c *comparisonControllerImpl) handleRange(w http.ResponseWriter, r *http.Request) {
	s, err := c.decodeState(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	axis, err := climate.ComputeRange(c.dataset, s.Selected, s.Period, s.Unit)
	if err != nil {
		utils.WriteError(w, statusFor(err), err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, axis)
}

func (c *comparisonControllerImpl) handleStatistics(w http.ResponseWriter, r *http.Request) {
	id := climate.CityID(r.PathValue("id"))
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "missing city id")
		return
	}
	city, err := c.dataset.City(id)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, err.Error())
		return
	}
	s, err := c.decodeState(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	st, err := climate.ComputeStatistics(c.dataset, id, s.Period, s.Unit)
	if err != nil {
		utils.WriteError(w, statusFor(err), err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, types.NewStatisticsResponse(city, s.Period, st))
}

func (c *comparisonControllerImpl) handleView(w http.ResponseWriter, r *http.Request) {
	s, err := c.decodeState(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	v, err := c.derive(s)
	if err != nil {
		slog.Error("view: derive failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to derive view")
		return
	}
	utils.WriteJSON(w, http.StatusOK, v)
}

func (c *comparisonControllerImpl) handleAction(w http.ResponseWriter, r *http.Request) {
	req, status, err := c.parseActionRequest(r)
	if err != nil {
		utils.WriteError(w, status, err.Error())
		return
	}
	next, err := viewstate.Apply(c.dataset, req.State, req.Action)
	if err != nil {
		utils.WriteError(w, statusFor(err), err.Error())
		return
	}
	v, err := c.derive(next)
	if err != nil {
		slog.Error("action: derive failed", "action", req.Action.Type, "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to derive view")
		return
	}
	slog.Debug("view action applied", "action", req.Action.Type, "cities", len(next.Selected))
	utils.WriteJSON(w, http.StatusOK, types.ActionResponse{
		State:     next,
		View:      v,
		Permalink: share.PermalinkURL(c.baseURL, viewstate.Encode(next)),
	})
}

func (c *comparisonControllerImpl) handleShare(w http.ResponseWriter, r *http.Request) {
	s, err := c.decodeState(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	size, err := share.ParseSize(r.URL.Query().Get("size"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	png, err := share.QRCode(share.PermalinkURL(c.baseURL, viewstate.Encode(s)), size)
	if err != nil {
		slog.Error("share: qr encode failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render share code")
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	utils.WriteBytes(w, http.StatusOK, "image/png", png)
}
