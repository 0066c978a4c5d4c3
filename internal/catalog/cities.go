package catalog

import (
	"fmt"
	"sort"
)

// City availability rules: which modes may operate in a city, with a short
// rationale. Derived from the fleet availability survey.
type CityRules struct {
	Allowed []string
	Notes   string
}

// A hub address before geocoding.
type HubAddress struct {
	Key     string
	Name    string
	Address string
}

// A reference link to a city's freight / clean-air policy.
type PolicyLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CityList is the fixed set of supported cities, in presentation order.
var CityList = []string{
	"Hamburg, Germany", "Shanghai, China", "Amsterdam, Netherlands", "New York City, USA", "London, UK",
	"São Paulo, Brazil", "Nairobi, Kenya", "Mumbai, India", "Singapore, Singapore", "Istanbul, Turkey",
}

var cityRules = map[string]CityRules{
	"Hamburg, Germany":       {Allowed: []string{ModeBoat, ModeCargoBike, ModeCargoBus, ModeCargoTram, ModeELCV, ModeSmallVan, ModeTruck}, Notes: "dense waterways & strong bike infra; no robots, no tram freight"},
	"Shanghai, China":        {Allowed: []string{ModeAutonomousRobot, ModeCargoBike, ModeCargoTram, ModeEScooterTrailer, ModeSmallVan, ModeTruck}, Notes: "robots pilot zones; extensive waterways; tram corridors exist"},
	"Amsterdam, Netherlands": {Allowed: []string{ModeBoat, ModeCargoBike, ModeCargoBus, ModeCargoTram, ModeELCV, ModeTruck}, Notes: "canals & tram; scooters widely piloted; no robots"},
	"New York City, USA":     {Allowed: []string{ModeAutonomousRobot, ModeCargoBike, ModeCargoBus, ModeSmallVan, ModeTruck}, Notes: "clean trucks, cargo bikes; boat feasible; no tram/robots"},
	"London, UK":             {Allowed: []string{ModeAutonomousRobot, ModeCargoBike, ModeCargoBus, ModeELCV, ModeTruck}, Notes: "ULEZ; cargo bus at night; scooters allowed in trials; no cargo tram"},
	"São Paulo, Brazil":      {Allowed: []string{ModeCargoBus, ModeSmallVan, ModeTruck}, Notes: "no urban barges/boats for last-mile; scooters constrained; no robots/tram"},
	"Nairobi, Kenya":         {Allowed: []string{ModeCargoBus, ModeSmallVan, ModeTruck}, Notes: "no boats/tram/robots; bikes feasible"},
	"Mumbai, India":          {Allowed: []string{ModeBoat, ModeCargoBike, ModeCargoBus, ModeSmallVan, ModeTruck}, Notes: "coastal/creeks allow boat in some corridors; no tram/robots"},
	"Singapore, Singapore":   {Allowed: []string{ModeBoat, ModeCargoBike, ModeCargoBus, ModeELCV, ModeTruck}, Notes: "strict PMD rules (no public e-scooters); high compliance; no robots/tram"},
	"Istanbul, Turkey":       {Allowed: []string{ModeBoat, ModeCargoBus, ModeCargoTram, ModeTruck}, Notes: "tram present; Bosphorus/Golden Horn allow boats; no scooters/robots"},
}

var centralHubs = map[string]HubAddress{
	"Hamburg, Germany":       {Key: "CENTRAL", Name: "Billbrook Central Warehouse", Address: "Billbrookdeich 100, 22113 Hamburg, Germany"},
	"Shanghai, China":        {Key: "CENTRAL", Name: "Pudong Central Warehouse", Address: "200 Century Ave, Pudong, Shanghai, China"},
	"Amsterdam, Netherlands": {Key: "CENTRAL", Name: "Westpoort Central Hub", Address: "Isolatorweg 36, 1014 AS Amsterdam, Netherlands"},
	"New York City, USA":     {Key: "CENTRAL", Name: "Midtown West Central Hub", Address: "620 W 42nd St, New York, NY 10036, USA"},
	"London, UK":             {Key: "CENTRAL", Name: "Canary Wharf Central Hub", Address: "1 Canada Square, London E14 5AB, UK"},
	"São Paulo, Brazil":      {Key: "CENTRAL", Name: "Marginal Tietê Central Hub", Address: "Av. Marquês de São Vicente 2210, São Paulo, Brazil"},
	"Nairobi, Kenya":         {Key: "CENTRAL", Name: "Mombasa Road Central Hub", Address: "Sameer Business Park, Mombasa Road, Nairobi, Kenya"},
	"Mumbai, India":          {Key: "CENTRAL", Name: "Bhiwandi Central Warehouse", Address: "Bhiwandi, Maharashtra 421302, India"},
	"Singapore, Singapore":   {Key: "CENTRAL", Name: "Jurong Port Central Hub", Address: "5 Jurong Port Rd, Singapore 619318"},
	"Istanbul, Turkey":       {Key: "CENTRAL", Name: "İkitelli Central Warehouse", Address: "İkitelli OSB, Başakşehir, İstanbul, Türkiye"},
}

var microHubs = map[string][]HubAddress{
	"Hamburg, Germany": {
		{Key: "HH-MH1", Name: "HafenCity", Address: "Großer Grasbrook, 20457 Hamburg, Germany"},
		{Key: "HH-MH2", Name: "Altona", Address: "Altona, Hamburg, Germany"},
		{Key: "HH-MH3", Name: "Wandsbek", Address: "Wandsbek, Hamburg, Germany"},
		{Key: "HH-MH4", Name: "Bergedorf", Address: "Bergedorf, Hamburg, Germany"},
		{Key: "HH-MH5", Name: "Eppendorf", Address: "Eppendorf, Hamburg, Germany"},
		{Key: "HH-MH6", Name: "St. Pauli", Address: "St. Pauli, Hamburg, Germany"},
		{Key: "HH-MH7", Name: "Harburg", Address: "Harburg, Hamburg, Germany"},
		{Key: "HH-MH8", Name: "Bahrenfeld", Address: "Bahrenfeld, Hamburg, Germany"},
		{Key: "HH-MH9", Name: "Niendorf", Address: "Niendorf, Hamburg, Germany"},
		{Key: "HH-MH10", Name: "Rothenburgsort", Address: "Rothenburgsort, Hamburg, Germany"},
	},
	"Shanghai, China": {
		{Key: "SH-MH1", Name: "Lujiazui", Address: "Pudong Lujiazui, Shanghai, China"},
		{Key: "SH-MH2", Name: "Jing'an Temple", Address: "1686 Nanjing West Rd, Jing'an, Shanghai, China"},
		{Key: "SH-MH3", Name: "Xintiandi", Address: "Lane 181 Taicang Rd, Huangpu, Shanghai, China"},
		{Key: "SH-MH4", Name: "Hongqiao", Address: "Hongqiao Railway Station, Shanghai, China"},
		{Key: "SH-MH5", Name: "Zhangjiang Hi-Tech Park", Address: "Zhangjiang, Pudong, Shanghai, China"},
		{Key: "SH-MH6", Name: "Waigaoqiao", Address: "Waigaoqiao, Pudong, Shanghai, China"},
		{Key: "SH-MH7", Name: "Yangpu", Address: "Yangpu District, Shanghai, China"},
		{Key: "SH-MH8", Name: "Minhang", Address: "Minhang District, Shanghai, China"},
		{Key: "SH-MH9", Name: "Qibao", Address: "Qibao, Minhang, Shanghai, China"},
		{Key: "SH-MH10", Name: "Wujiaochang", Address: "Wujiaochang, Yangpu, Shanghai, China"},
	},
	"Amsterdam, Netherlands": {
		{Key: "AMS-MH1", Name: "Dam Square", Address: "Dam, 1012 JS Amsterdam, Netherlands"},
		{Key: "AMS-MH2", Name: "De Pijp / Albert Cuyp", Address: "Albert Cuypstraat, 1073 BD Amsterdam, Netherlands"},
		{Key: "AMS-MH3", Name: "Sloterdijk", Address: "Station Sloterdijk, Amsterdam, Netherlands"},
		{Key: "AMS-MH4", Name: "Zuidas", Address: "Zuidas, Amsterdam, Netherlands"},
		{Key: "AMS-MH5", Name: "Jordaan", Address: "Jordaan, Amsterdam, Netherlands"},
		{Key: "AMS-MH6", Name: "Noord / Buiksloterweg", Address: "Buiksloterweg, 1031 BT Amsterdam, Netherlands"},
		{Key: "AMS-MH7", Name: "Bijlmer Arena", Address: "Johan Cruijff Boulevard, 1101 DS Amsterdam, Netherlands"},
		{Key: "AMS-MH8", Name: "Museumplein", Address: "Museumplein, 1071 DJ Amsterdam, Netherlands"},
		{Key: "AMS-MH9", Name: "Westerpark", Address: "Westerpark, Amsterdam, Netherlands"},
		{Key: "AMS-MH10", Name: "Oostpoort", Address: "Winkelcentrum Oostpoort, 1093 Amsterdam, Netherlands"},
	},
	"New York City, USA": {
		{Key: "NYC-MH1", Name: "World Trade Center", Address: "185 Greenwich St, New York, NY 10007, USA"},
		{Key: "NYC-MH2", Name: "Grand Central", Address: "89 E 42nd St, New York, NY 10017, USA"},
		{Key: "NYC-MH3", Name: "Harlem 125th", Address: "11 W 125th St, New York, NY 10027, USA"},
		{Key: "NYC-MH4", Name: "Brooklyn Navy Yard", Address: "63 Flushing Ave, Brooklyn, NY 11205, USA"},
		{Key: "NYC-MH5", Name: "Long Island City", Address: "Court Square, Queens, NY 11101, USA"},
		{Key: "NYC-MH6", Name: "Williamsburg", Address: "Bedford Ave, Brooklyn, NY 11211, USA"},
		{Key: "NYC-MH7", Name: "Upper East 86/Lex", Address: "86th St & Lexington Ave, New York, NY 10028, USA"},
		{Key: "NYC-MH8", Name: "Union Square", Address: "201 Park Ave S, New York, NY 10003, USA"},
		{Key: "NYC-MH9", Name: "SoHo", Address: "Prince St & Broadway, New York, NY 10012, USA"},
		{Key: "NYC-MH10", Name: "Astoria", Address: "31-01 Steinway St, Queens, NY 11103, USA"},
	},
	"London, UK": {
		{Key: "LDN-MH1", Name: "King's Cross", Address: "Euston Rd, London N1 9AL, UK"},
		{Key: "LDN-MH2", Name: "Paddington", Address: "Praed St, London W2 1HB, UK"},
		{Key: "LDN-MH3", Name: "Shoreditch", Address: "Shoreditch High St, London E1 6PQ, UK"},
		{Key: "LDN-MH4", Name: "Borough Market", Address: "8 Southwark St, London SE1 1LB, UK"},
		{Key: "LDN-MH5", Name: "Greenwich", Address: "Greenwich, London SE10, UK"},
		{Key: "LDN-MH6", Name: "Hammersmith", Address: "Hammersmith Broadway, London W6, UK"},
		{Key: "LDN-MH7", Name: "Brixton", Address: "Brixton Station Rd, London SW9 8QB, UK"},
		{Key: "LDN-MH8", Name: "Camden", Address: "Camden Market, London NW1, UK"},
		{Key: "LDN-MH9", Name: "Stratford", Address: "Station St, London E15 1AZ, UK"},
		{Key: "LDN-MH10", Name: "Wembley", Address: "Wembley Stadium, London HA9 0WS, UK"},
	},
	"São Paulo, Brazil": {
		{Key: "SP-MH1", Name: "Luz / CPTM", Address: "Praça da Luz, São Paulo, Brazil"},
		{Key: "SP-MH2", Name: "Paulista Ave", Address: "Av. Paulista 1578, São Paulo, Brazil"},
		{Key: "SP-MH3", Name: "Pinheiros", Address: "Rua Paes Leme 524, São Paulo, Brazil"},
		{Key: "SP-MH4", Name: "Morumbi", Address: "Av. Giovanni Gronchi 5819, São Paulo, Brazil"},
		{Key: "SP-MH5", Name: "Mooca", Address: "Rua da Mooca 2500, São Paulo, Brazil"},
		{Key: "SP-MH6", Name: "Itaquera", Address: "Rua Itaquera 1100, São Paulo, Brazil"},
		{Key: "SP-MH7", Name: "Vila Mariana", Address: "Rua Domingos de Morais 2564, São Paulo, Brazil"},
		{Key: "SP-MH8", Name: "Tatuapé", Address: "Rua Tuiuti 1000, São Paulo, Brazil"},
		{Key: "SP-MH9", Name: "Santo Amaro", Address: "Av. das Nações Unidas 22540, São Paulo, Brazil"},
		{Key: "SP-MH10", Name: "Guarulhos Cargo", Address: "Rod. Hélio Smidt, Guarulhos, Brazil"},
	},
	"Nairobi, Kenya": {
		{Key: "NRB-MH1", Name: "Westlands", Address: "Westlands, Nairobi, Kenya"},
		{Key: "NRB-MH2", Name: "Kilimani", Address: "Kilimani, Nairobi, Kenya"},
		{Key: "NRB-MH3", Name: "CBD", Address: "City Hall Way, Nairobi, Kenya"},
		{Key: "NRB-MH4", Name: "Industrial Area", Address: "Addis Ababa Rd, Industrial Area, Nairobi, Kenya"},
		{Key: "NRB-MH5", Name: "Eastleigh", Address: "Eastleigh, Nairobi, Kenya"},
		{Key: "NRB-MH6", Name: "Karen", Address: "Karen, Nairobi, Kenya"},
		{Key: "NRB-MH7", Name: "Langata", Address: "Langata Rd, Nairobi, Kenya"},
		{Key: "NRB-MH8", Name: "Gigiri", Address: "Gigiri, Nairobi, Kenya"},
		{Key: "NRB-MH9", Name: "Kasarani", Address: "Kasarani, Nairobi, Kenya"},
		{Key: "NRB-MH10", Name: "Ruiru", Address: "Ruiru, Kiambu County, Kenya"},
	},
	"Mumbai, India": {
		{Key: "MMB-MH1", Name: "Andheri East", Address: "Andheri East, Mumbai, Maharashtra, India"},
		{Key: "MMB-MH2", Name: "BKC", Address: "Bandra Kurla Complex, Mumbai, Maharashtra, India"},
		{Key: "MMB-MH3", Name: "Dadar", Address: "Dadar, Mumbai, Maharashtra, India"},
		{Key: "MMB-MH4", Name: "Colaba", Address: "Colaba, Mumbai, Maharashtra, India"},
		{Key: "MMB-MH5", Name: "Powai", Address: "Powai, Mumbai, Maharashtra, India"},
		{Key: "MMB-MH6", Name: "Vashi", Address: "Vashi, Navi Mumbai, Maharashtra, India"},
		{Key: "MMB-MH7", Name: "Thane West", Address: "Thane West, Thane, Maharashtra, India"},
		{Key: "MMB-MH8", Name: "Goregaon East", Address: "Goregaon East, Mumbai, Maharashtra, India"},
		{Key: "MMB-MH9", Name: "Mulund West", Address: "Mulund West, Mumbai, Maharashtra, India"},
		{Key: "MMB-MH10", Name: "Chembur", Address: "Chembur, Mumbai, Maharashtra, India"},
	},
	"Singapore, Singapore": {
		{Key: "SGP-MH1", Name: "Raffles Place", Address: "Raffles Place, Singapore"},
		{Key: "SGP-MH2", Name: "Orchard", Address: "Orchard Road, Singapore"},
		{Key: "SGP-MH3", Name: "Ang Mo Kio", Address: "Ang Mo Kio Hub, Singapore"},
		{Key: "SGP-MH4", Name: "Woodlands", Address: "Woodlands MRT Station, Singapore"},
		{Key: "SGP-MH5", Name: "Tampines", Address: "Tampines MRT Station, Singapore"},
		{Key: "SGP-MH6", Name: "Paya Lebar", Address: "Paya Lebar Quarter, Singapore"},
		{Key: "SGP-MH7", Name: "Jurong East", Address: "Jurong East MRT Station, Singapore"},
		{Key: "SGP-MH8", Name: "Bukit Panjang", Address: "Bukit Panjang Plaza, Singapore"},
		{Key: "SGP-MH9", Name: "Chinatown", Address: "Chinatown, Singapore"},
		{Key: "SGP-MH10", Name: "Toa Payoh", Address: "Toa Payoh Central, Singapore"},
	},
	"Istanbul, Turkey": {
		{Key: "IST-MH1", Name: "Kadıköy Pier", Address: "Kadıköy İskelesi, İstanbul, Türkiye"},
		{Key: "IST-MH2", Name: "Taksim", Address: "Taksim Meydanı, İstanbul, Türkiye"},
		{Key: "IST-MH3", Name: "Beşiktaş", Address: "Beşiktaş, İstanbul, Türkiye"},
		{Key: "IST-MH4", Name: "Bakırköy", Address: "Bakırköy, İstanbul, Türkiye"},
		{Key: "IST-MH5", Name: "Ümraniye", Address: "Ümraniye, İstanbul, Türkiye"},
		{Key: "IST-MH6", Name: "Sarıyer", Address: "Sarıyer, İstanbul, Türkiye"},
		{Key: "IST-MH7", Name: "Beylikdüzü", Address: "Beylikdüzü, İstanbul, Türkiye"},
		{Key: "IST-MH8", Name: "Pendik", Address: "Pendik, İstanbul, Türkiye"},
		{Key: "IST-MH9", Name: "Kartal", Address: "Kartal, İstanbul, Türkiye"},
		{Key: "IST-MH10", Name: "Sultanahmet", Address: "Sultanahmet, Fatih, İstanbul, Türkiye"},
	},
}

var policyLinks = map[string][]PolicyLink{
	"Hamburg, Germany": {
		{Title: "Hamburg – Clean Air / Umweltzone info", URL: "https://www.hamburg.de/luftreinhaltung/"},
		{Title: "Freight delivery guidance (City of Hamburg)", URL: "https://www.hamburg.de/verkehr/"},
	},
	"Shanghai, China": {
		{Title: "Shanghai Low-Emission Zones (overview)", URL: "https://transportpolicy.net/region/china/"},
	},
	"Amsterdam, Netherlands": {
		{Title: "Amsterdam Zero-Emission City Logistics (ZES)", URL: "https://www.amsterdam.nl/en/traffic-transport/zero-emission/"},
	},
	"New York City, USA": {
		{Title: "NYC Clean Trucks Program", URL: "https://www.nyccte.org/clean-trucks-program"},
		{Title: "Commercial Loading & Deliveries (NYC DOT)", URL: "https://www.nyc.gov/html/dot/html/motorist/commercial-vehicles.shtml"},
	},
	"London, UK": {
		{Title: "London ULEZ", URL: "https://tfl.gov.uk/modes/driving/ultra-low-emission-zone"},
		{Title: "Freight & Deliveries (TfL)", URL: "https://tfl.gov.uk/info-for/deliveries-in-london"},
	},
	"São Paulo, Brazil": {
		{Title: "São Paulo Vehicle Restriction & Urban Mobility", URL: "https://www.prefeitura.sp.gov.br/"},
	},
	"Nairobi, Kenya": {
		{Title: "Nairobi mobility & logistics (NMS)", URL: "https://nms.go.ke/"},
	},
	"Mumbai, India": {
		{Title: "Mumbai logistics & traffic management", URL: "https://mumbaicity.gov.in/"},
	},
	"Singapore, Singapore": {
		{Title: "Singapore Green Plan / Clean Vehicles", URL: "https://www.lta.gov.sg/"},
	},
	"Istanbul, Turkey": {
		{Title: "Istanbul transport authority (İBB Ulaşım)", URL: "https://ulasim.istanbul/"},
	},
}

// IsCity reports whether name is a supported city.
func IsCity(name string) bool {
	_, ok := cityRules[name]
	return ok
}

// RulesForCity returns the availability rules for a city.
func RulesForCity(name string) (CityRules, error) {
	r, ok := cityRules[name]
	if !ok {
		return CityRules{}, fmt.Errorf("catalog: unknown city %q", name)
	}
	return r, nil
}

// AllowedModes returns the sorted mode keys permitted in a city.
func AllowedModes(name string) ([]string, error) {
	r, err := RulesForCity(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(r.Allowed))
	copy(out, r.Allowed)
	sort.Strings(out)
	return out, nil
}

// CentralHub returns the central warehouse address for a city.
func CentralHub(name string) (HubAddress, error) {
	h, ok := centralHubs[name]
	if !ok {
		return HubAddress{}, fmt.Errorf("catalog: no central hub for city %q", name)
	}
	return h, nil
}

// MicroHubs returns the micro-hub addresses for a city, capped at ten.
func MicroHubs(name string) ([]HubAddress, error) {
	hubs, ok := microHubs[name]
	if !ok {
		return nil, fmt.Errorf("catalog: no micro hubs for city %q", name)
	}
	if len(hubs) > 10 {
		hubs = hubs[:10]
	}
	out := make([]HubAddress, len(hubs))
	copy(out, hubs)
	return out, nil
}

// PolicyLinks returns the registered policy links for a city. Unknown cities
// yield an empty list rather than an error.
func PolicyLinks(name string) []PolicyLink {
	return policyLinks[name]
}
