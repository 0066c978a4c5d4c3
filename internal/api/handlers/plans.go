package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"math"
	"net/http"
	"strings"

	"squaremiles-route-service/internal/api/dto"
	"squaremiles-route-service/internal/catalog"
	"squaremiles-route-service/internal/domain"
	"squaremiles-route-service/internal/ports"
	"squaremiles-route-service/internal/services"
)

// Routing engine selectors.
const (
	EngineOSRM      = "osrm"
	EngineHaversine = "haversine"
)

type PlanHandler struct {
	Geocoder ports.Geocoder
	Planner  ports.RoutePlanner
}

// Plan orchestrates baseline construction, the candidate search and the ESG
// dashboard for one origin/destination pair.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	city := strings.TrimSpace(req.City)
	if !catalog.IsCity(city) {
		writeError(w, r, http.StatusBadRequest, "unknown city")
		return
	}

	if strings.TrimSpace(req.DestinationAddress) == "" {
		writeError(w, r, http.StatusBadRequest, "destination_address is required")
		return
	}

	engine := strings.TrimSpace(req.Engine)
	if engine == "" {
		engine = EngineOSRM
	}
	if engine != EngineOSRM && engine != EngineHaversine {
		writeError(w, r, http.StatusBadRequest, "engine must be \"osrm\" or \"haversine\"")
		return
	}

	weight := 0.5
	if req.WeightCost != nil {
		weight = *req.WeightCost
	}
	if weight < 0 || weight > 1 {
		writeError(w, r, http.StatusBadRequest, "weight_cost must be between 0 and 1")
		return
	}

	ctx := r.Context()

	graph, err := services.BuildCityGraph(ctx, h.Geocoder, city)
	if err != nil {
		if errors.Is(err, ports.ErrAddressNotFound) {
			writeError(w, r, http.StatusUnprocessableEntity, "could not geocode city hubs")
			return
		}
		log.Printf("build city graph failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	origin := graph.CentralHub.Location
	if s := strings.TrimSpace(req.StartAddress); s != "" {
		origin, err = h.Geocoder.Geocode(ctx, s)
		if err != nil {
			if errors.Is(err, ports.ErrAddressNotFound) {
				writeError(w, r, http.StatusUnprocessableEntity, "could not geocode start_address")
				return
			}
			log.Printf("geocode start failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	dest, err := h.Geocoder.Geocode(ctx, req.DestinationAddress)
	if err != nil {
		if errors.Is(err, ports.ErrAddressNotFound) {
			writeError(w, r, http.StatusUnprocessableEntity, "could not geocode destination_address")
			return
		}
		log.Printf("geocode destination failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	var hubOverride *domain.Node
	if req.ViaHub && strings.TrimSpace(req.MicroHub) != "" {
		hubOverride = services.MicroHubByName(graph.MicroHubs, strings.TrimSpace(req.MicroHub))
		if hubOverride == nil {
			writeError(w, r, http.StatusBadRequest, "unknown micro_hub")
			return
		}
	}

	lp := services.LegPlanner{}
	if engine == EngineOSRM {
		lp.Planner = h.Planner
	}

	chain := services.ParseChain(req.BaselineChain)
	baseline, err := services.BuildBaseline(ctx, lp, services.BaselineRequest{
		City:        city,
		Origin:      origin,
		Destination: dest,
		Chain:       chain,
		ViaHub:      req.ViaHub,
		HubOverride: hubOverride,
		Hubs:        graph.MicroHubs,
	})
	if err != nil {
		log.Printf("build baseline failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	// The candidate search pins the baseline's hub so the comparison stays
	// apples-to-apples when a hub was requested.
	searchReq := services.SearchRequest{
		City:        city,
		Origin:      origin,
		Destination: dest,
		ViaHub:      req.ViaHub,
		Hubs:        graph.MicroHubs,
	}
	if req.ViaHub {
		searchReq.FixedHub = baseline.Hub
	}

	result, err := services.SearchRoutes(ctx, lp, searchReq)
	if err != nil {
		log.Printf("search routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	bestCombo := services.PickBestCombo(result, weight)
	dashboard := services.BuildDashboard(baseline, bestCombo)

	res := dto.PlanResponse{
		City:            city,
		Origin:          dto.PointResponse{Lat: origin.Lat, Lon: origin.Lon},
		Destination:     dto.PointResponse{Lat: dest.Lat, Lon: dest.Lon},
		Engine:          engine,
		Baseline:        toBaselineResponse(chain, baseline),
		LowestEmissions: toCandidateResponse("Lowest Emissions", result.MinCO2),
		LowestCost:      toCandidateResponse("Lowest Cost", result.MinCost),
		BestCombined:    toCandidateResponse("Best Combined", bestCombo),
		Comparison:      toComparisonResponse(baseline.Totals, bestCombo.Totals),
		Dashboard:       toDashboardResponse(dashboard),
		PolicyLinks: dto.PolicyLinksResponse{
			City:  city,
			Links: catalog.PolicyLinks(city),
		},
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toLegResponse(l domain.Leg) dto.LegResponse {
	label := l.Mode
	if m, err := catalog.ModeByKey(l.Mode); err == nil {
		label = m.Label
	}

	geometry := make([][2]float64, 0, len(l.Path))
	for _, p := range l.Path {
		geometry = append(geometry, [2]float64{p[0], p[1]})
	}

	return dto.LegResponse{
		From:       l.From,
		To:         l.To,
		Mode:       l.Mode,
		ModeLabel:  label,
		DistanceKm: l.DistanceKm,
		TimeHours:  l.TimeHours,
		CO2Kg:      l.CO2Kg,
		Cost:       l.Cost,
		Geometry:   geometry,
	}
}

func toTotalsResponse(t domain.Totals) dto.TotalsResponse {
	return dto.TotalsResponse{
		DistanceKm: t.DistanceKm,
		TimeHours:  t.TimeHours,
		CO2Kg:      t.CO2Kg,
		Cost:       t.Cost,
	}
}

func toHubResponse(n *domain.Node) *dto.HubResponse {
	if n == nil {
		return nil
	}
	return &dto.HubResponse{
		Key:  n.Key,
		Name: n.Name,
		Lat:  n.Location.Lat,
		Lon:  n.Location.Lon,
	}
}

func toBaselineResponse(chain []string, b services.Baseline) dto.BaselineResponse {
	legs := make([]dto.LegResponse, 0, len(b.Legs))
	for _, l := range b.Legs {
		legs = append(legs, toLegResponse(l))
	}

	return dto.BaselineResponse{
		Chain:  chain,
		Hub:    toHubResponse(b.Hub),
		Legs:   legs,
		Totals: toTotalsResponse(b.Totals),
	}
}

func toCandidateResponse(title string, opt *domain.RouteOption) dto.CandidateResponse {
	legs := make([]dto.LegResponse, 0, len(opt.Legs))
	for _, l := range opt.Legs {
		legs = append(legs, toLegResponse(l))
	}

	labels := make([]string, 0, len(opt.Modes))
	for _, key := range opt.Modes {
		if m, err := catalog.ModeByKey(key); err == nil {
			labels = append(labels, m.Label)
		} else {
			labels = append(labels, key)
		}
	}

	return dto.CandidateResponse{
		Title:      title,
		Hub:        toHubResponse(opt.Hub),
		Modes:      opt.Modes,
		ModeLabels: labels,
		Legs:       legs,
		Totals:     toTotalsResponse(opt.Totals),
		NormCO2:    opt.NormCO2,
		NormCost:   opt.NormCost,
	}
}

func toBadgeResponse(b services.Badge) dto.BadgeResponse {
	out := dto.BadgeResponse{Direction: b.Direction, Good: b.Good}
	if !b.Infinite {
		p := b.Percent
		out.Percent = &p
	}
	return out
}

func toMetricChange(base, scenario float64) dto.MetricChangeResponse {
	delta := scenario - base

	direction := services.DirectionFlat
	if delta > 0 {
		direction = services.DirectionUp
	} else if delta < 0 {
		direction = services.DirectionDown
	}

	out := dto.MetricChangeResponse{
		Baseline:  base,
		Scenario:  scenario,
		DeltaAbs:  delta,
		Direction: direction,
	}
	if base > 0 {
		p := delta / base * 100
		out.Percent = &p
	}
	return out
}

func toComparisonResponse(base, scenario domain.Totals) dto.ComparisonResponse {
	return dto.ComparisonResponse{
		CO2Kg: toMetricChange(base.CO2Kg, scenario.CO2Kg),
		Cost:  toMetricChange(base.Cost, scenario.Cost),
	}
}

func toDashboardResponse(d services.Dashboard) dto.DashboardResponse {
	var out dto.DashboardResponse

	out.Environmental.CO2Saved = toBadgeResponse(d.CO2)
	out.Environmental.FuelAvoided = toBadgeResponse(d.Fuel)
	out.Environmental.Congestion = toBadgeResponse(d.Congestion)
	out.Environmental.BaselineCO2Kg = d.BaselineCO2Kg
	out.Environmental.ScenarioCO2Kg = d.ScenarioCO2Kg

	out.Social.JobsCreated = toBadgeResponse(d.LabourHours)
	out.Social.ImprovedSafety = toBadgeResponse(d.Safety)
	out.Social.NoiseReduction = toBadgeResponse(d.Noise)

	out.Economic.OperatingCostDelta = toBadgeResponse(d.Cost)
	out.Economic.TimeToDeliverDelta = toBadgeResponse(d.TimeToDeliver)
	out.Economic.ROIBreakeven = d.ROIBreakeven
	out.Economic.GreenCapexKUSD = d.GreenCapexKUSD
	out.Economic.MonthlySavingUSD = d.MonthlySavingUSD
	out.Economic.SubsidyNeededUSD = d.SubsidyNeededUSD
	if d.ROIBreakeven && !math.IsInf(d.ROIMonths, 1) {
		months := d.ROIMonths
		out.Economic.ROIMonths = &months
	}

	return out
}
