package dto

type PlanRequest struct {
	City               string   `json:"city"`
	StartAddress       string   `json:"start_address"`
	DestinationAddress string   `json:"destination_address"`
	BaselineChain      string   `json:"baseline_chain"`
	ViaHub             bool     `json:"via_hub"`
	MicroHub           string   `json:"micro_hub"`
	WeightCost         *float64 `json:"weight_cost"`
	Engine             string   `json:"engine"`
}

type PointResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type HubResponse struct {
	Key  string  `json:"key"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type LegResponse struct {
	From       string       `json:"from"`
	To         string       `json:"to"`
	Mode       string       `json:"mode"`
	ModeLabel  string       `json:"mode_label"`
	DistanceKm float64      `json:"distance_km"`
	TimeHours  float64      `json:"time_h"`
	CO2Kg      float64      `json:"co2_kg"`
	Cost       float64      `json:"cost"`
	Geometry   [][2]float64 `json:"geometry"`
}

type TotalsResponse struct {
	DistanceKm float64 `json:"distance_km"`
	TimeHours  float64 `json:"time_h"`
	CO2Kg      float64 `json:"co2_kg"`
	Cost       float64 `json:"cost"`
}

type BaselineResponse struct {
	Chain  []string       `json:"chain"`
	Hub    *HubResponse   `json:"hub,omitempty"`
	Legs   []LegResponse  `json:"legs"`
	Totals TotalsResponse `json:"totals"`
}

type CandidateResponse struct {
	Title      string         `json:"title"`
	Hub        *HubResponse   `json:"hub,omitempty"`
	Modes      []string       `json:"modes"`
	ModeLabels []string       `json:"mode_labels"`
	Legs       []LegResponse  `json:"legs"`
	Totals     TotalsResponse `json:"totals"`
	NormCO2    float64        `json:"score_norm_co2"`
	NormCost   float64        `json:"score_norm_cost"`
}

// A dashboard indicator. Percent is null when the baseline was zero and the
// scenario is not (an unbounded increase).
type BadgeResponse struct {
	Direction string   `json:"direction"`
	Percent   *float64 `json:"percent"`
	Good      bool     `json:"good"`
}

type MetricChangeResponse struct {
	Baseline  float64  `json:"baseline"`
	Scenario  float64  `json:"scenario"`
	DeltaAbs  float64  `json:"delta_abs"`
	Percent   *float64 `json:"delta_percent"`
	Direction string   `json:"direction"`
}

type ComparisonResponse struct {
	CO2Kg MetricChangeResponse `json:"co2_kg"`
	Cost  MetricChangeResponse `json:"cost"`
}

type DashboardResponse struct {
	Environmental struct {
		CO2Saved      BadgeResponse `json:"co2_saved"`
		FuelAvoided   BadgeResponse `json:"fuel_avoided"`
		Congestion    BadgeResponse `json:"traffic_congestion_change"`
		BaselineCO2Kg float64       `json:"baseline_co2_kg"`
		ScenarioCO2Kg float64       `json:"scenario_co2_kg"`
	} `json:"environmental"`
	Social struct {
		JobsCreated    BadgeResponse `json:"jobs_created"`
		ImprovedSafety BadgeResponse `json:"improved_safety"`
		NoiseReduction BadgeResponse `json:"noise_reduction"`
	} `json:"social"`
	Economic struct {
		OperatingCostDelta BadgeResponse `json:"operating_cost_delta"`
		TimeToDeliverDelta BadgeResponse `json:"time_to_delivery_delta"`
		ROIMonths          *float64      `json:"roi_months"`
		ROIBreakeven       bool          `json:"roi_breakeven"`
		GreenCapexKUSD     float64       `json:"green_capex_kusd"`
		MonthlySavingUSD   float64       `json:"monthly_saving_usd"`
		SubsidyNeededUSD   float64       `json:"subsidy_needed_usd"`
	} `json:"economic"`
}

type PlanResponse struct {
	City            string              `json:"city"`
	Origin          PointResponse       `json:"origin"`
	Destination     PointResponse       `json:"destination"`
	Engine          string              `json:"engine"`
	Baseline        BaselineResponse    `json:"baseline"`
	LowestEmissions CandidateResponse   `json:"lowest_emissions"`
	LowestCost      CandidateResponse   `json:"lowest_cost"`
	BestCombined    CandidateResponse   `json:"best_combined"`
	Comparison      ComparisonResponse  `json:"baseline_vs_best_combined"`
	Dashboard       DashboardResponse   `json:"esg_dashboard"`
	PolicyLinks     PolicyLinksResponse `json:"policy_links"`
}
