// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package gazetteer

import "github.com/thecode94/Electric-Vehicle-Recharge-Bunk-sub001/internal/models"

func pt(lat, lng float64) *models.Coordinates {
	return &models.Coordinates{Lat: lat, Lng: lng}
}

// builtinEntries returns a fresh copy of the built-in place list. Order
// matters: it breaks score ties during resolution.
func builtinEntries() []models.PlaceEntry {
	return []models.PlaceEntry{
		// Metro cities
		{Key: "mumbai", DisplayName: "Mumbai", Address: "Mumbai, Maharashtra, India", Coordinates: pt(19.0760, 72.8777),
			Aliases: []string{"bombay", "mumbai city"}, Landmarks: []string{"gateway of india", "marine drive", "chhatrapati shivaji terminus"},
			RegionLabel: "Maharashtra", Kind: models.PlaceCity},
		{Key: "delhi", DisplayName: "New Delhi", Address: "New Delhi, Delhi, India", Coordinates: pt(28.6139, 77.2090),
			Aliases: []string{"new delhi", "dilli", "ncr"}, Landmarks: []string{"india gate", "connaught place", "red fort"},
			RegionLabel: "National Capital Region", Kind: models.PlaceCity},
		{Key: "bengaluru", DisplayName: "Bengaluru", Address: "Bengaluru, Karnataka, India", Coordinates: pt(12.9716, 77.5946),
			Aliases: []string{"bangalore", "blr"}, Landmarks: []string{"cubbon park", "vidhana soudha", "lalbagh"},
			RegionLabel: "Karnataka", Kind: models.PlaceCity},
		{Key: "chennai", DisplayName: "Chennai", Address: "Chennai, Tamil Nadu, India", Coordinates: pt(13.0827, 80.2707),
			Aliases: []string{"madras"}, Landmarks: []string{"marina beach", "kapaleeshwarar temple"},
			RegionLabel: "Tamil Nadu", Kind: models.PlaceCity},
		{Key: "kolkata", DisplayName: "Kolkata", Address: "Kolkata, West Bengal, India", Coordinates: pt(22.5726, 88.3639),
			Aliases: []string{"calcutta"}, Landmarks: []string{"howrah bridge", "victoria memorial"},
			RegionLabel: "West Bengal", Kind: models.PlaceCity},
		{Key: "hyderabad", DisplayName: "Hyderabad", Address: "Hyderabad, Telangana, India", Coordinates: pt(17.3850, 78.4867),
			Aliases: []string{"cyberabad", "secunderabad"}, Landmarks: []string{"charminar", "hussain sagar"},
			RegionLabel: "Telangana", Kind: models.PlaceCity},
		{Key: "pune", DisplayName: "Pune", Address: "Pune, Maharashtra, India", Coordinates: pt(18.5204, 73.8567),
			Aliases: []string{"poona"}, Landmarks: []string{"shaniwar wada", "koregaon park"},
			RegionLabel: "Maharashtra", Kind: models.PlaceCity},
		{Key: "ahmedabad", DisplayName: "Ahmedabad", Address: "Ahmedabad, Gujarat, India", Coordinates: pt(23.0225, 72.5714),
			Aliases: []string{"amdavad"}, Landmarks: []string{"sabarmati ashram", "kankaria lake"},
			RegionLabel: "Gujarat", Kind: models.PlaceCity},
		{Key: "jaipur", DisplayName: "Jaipur", Address: "Jaipur, Rajasthan, India", Coordinates: pt(26.9124, 75.7873),
			Aliases: []string{"pink city"}, Landmarks: []string{"hawa mahal", "amber fort"},
			RegionLabel: "Rajasthan", Kind: models.PlaceCity},
		{Key: "kochi", DisplayName: "Kochi", Address: "Kochi, Kerala, India", Coordinates: pt(9.9312, 76.2673),
			Aliases: []string{"cochin", "ernakulam"}, Landmarks: []string{"fort kochi", "marine drive kochi"},
			RegionLabel: "Kerala", Kind: models.PlaceCity},
		{Key: "lucknow", DisplayName: "Lucknow", Address: "Lucknow, Uttar Pradesh, India", Coordinates: pt(26.8467, 80.9462),
			Landmarks: []string{"bara imambara"}, RegionLabel: "Uttar Pradesh", Kind: models.PlaceCity},
		{Key: "chandigarh", DisplayName: "Chandigarh", Address: "Chandigarh, India", Coordinates: pt(30.7333, 76.7794),
			Landmarks: []string{"rock garden", "sukhna lake"}, RegionLabel: "Punjab", Kind: models.PlaceCity},

		// Satellite cities
		{Key: "thane", DisplayName: "Thane", Address: "Thane, Maharashtra, India", Coordinates: pt(19.2183, 72.9781),
			RegionLabel: "Mumbai Metropolitan Region", Kind: models.PlaceCity},
		{Key: "navi-mumbai", DisplayName: "Navi Mumbai", Address: "Navi Mumbai, Maharashtra, India", Coordinates: pt(19.0330, 73.0297),
			Aliases: []string{"new bombay", "vashi"}, RegionLabel: "Mumbai Metropolitan Region", Kind: models.PlaceCity},
		{Key: "gurugram", DisplayName: "Gurugram", Address: "Gurugram, Haryana, India", Coordinates: pt(28.4595, 77.0266),
			Aliases: []string{"gurgaon"}, Landmarks: []string{"cyber hub"}, RegionLabel: "National Capital Region", Kind: models.PlaceCity},
		{Key: "noida", DisplayName: "Noida", Address: "Noida, Uttar Pradesh, India", Coordinates: pt(28.5355, 77.3910),
			Aliases: []string{"greater noida"}, RegionLabel: "National Capital Region", Kind: models.PlaceCity},

		// Areas
		{Key: "bandra", DisplayName: "Bandra", Address: "Bandra, Mumbai", Coordinates: pt(19.0596, 72.8295),
			Landmarks: []string{"bandstand", "bandra kurla complex", "bkc"}, RegionLabel: "Mumbai", Kind: models.PlaceArea},
		{Key: "andheri", DisplayName: "Andheri", Address: "Andheri, Mumbai", Coordinates: pt(19.1136, 72.8697),
			Landmarks: []string{"lokhandwala"}, RegionLabel: "Mumbai", Kind: models.PlaceArea},
		{Key: "powai", DisplayName: "Powai", Address: "Powai, Mumbai", Coordinates: pt(19.1176, 72.9060),
			Landmarks: []string{"hiranandani gardens", "powai lake"}, RegionLabel: "Mumbai", Kind: models.PlaceArea},
		{Key: "whitefield", DisplayName: "Whitefield", Address: "Whitefield, Bengaluru", Coordinates: pt(12.9698, 77.7500),
			Landmarks: []string{"itpl"}, RegionLabel: "Bengaluru", Kind: models.PlaceArea},
		{Key: "koramangala", DisplayName: "Koramangala", Address: "Koramangala, Bengaluru", Coordinates: pt(12.9352, 77.6245),
			RegionLabel: "Bengaluru", Kind: models.PlaceArea},
		{Key: "electronic-city", DisplayName: "Electronic City", Address: "Electronic City, Bengaluru", Coordinates: pt(12.8452, 77.6602),
			RegionLabel: "Bengaluru", Kind: models.PlaceArea},
		{Key: "hinjewadi", DisplayName: "Hinjewadi", Address: "Hinjewadi, Pune", Coordinates: pt(18.5913, 73.7389),
			Landmarks: []string{"rajiv gandhi infotech park"}, RegionLabel: "Pune", Kind: models.PlaceArea},
		{Key: "hitec-city", DisplayName: "HITEC City", Address: "HITEC City, Hyderabad", Coordinates: pt(17.4435, 78.3772),
			Aliases: []string{"madhapur"}, RegionLabel: "Hyderabad", Kind: models.PlaceArea},

		// Keywords carry no coordinates; they only hint the caller.
		{Key: "ev-charging", DisplayName: "EV charging stations", Aliases: []string{"charging station", "charger", "recharge bunk"},
			Kind: models.PlaceKeyword},
		{Key: "fast-charging", DisplayName: "DC fast chargers", Aliases: []string{"fast charger", "dc fast", "ccs2", "chademo"},
			Kind: models.PlaceKeyword},
		{Key: "highway", DisplayName: "Highway charging", Aliases: []string{"expressway", "national highway"},
			Kind: models.PlaceKeyword},
	}
}

// anchor is a fallback city centre used when the gazetteer has no match.
type anchor struct {
	name    string
	aliases []string
	address string
	coords  models.Coordinates
}

// cityAnchors is independent of the gazetteer; overlays never touch it.
var cityAnchors = []anchor{
	{name: "mumbai", aliases: []string{"bombay"}, address: "Mumbai, Maharashtra, India", coords: models.Coordinates{Lat: 19.0760, Lng: 72.8777}},
	{name: "delhi", aliases: []string{"new delhi"}, address: "New Delhi, Delhi, India", coords: models.Coordinates{Lat: 28.6139, Lng: 77.2090}},
	{name: "bengaluru", aliases: []string{"bangalore"}, address: "Bengaluru, Karnataka, India", coords: models.Coordinates{Lat: 12.9716, Lng: 77.5946}},
	{name: "chennai", aliases: []string{"madras"}, address: "Chennai, Tamil Nadu, India", coords: models.Coordinates{Lat: 13.0827, Lng: 80.2707}},
	{name: "kolkata", aliases: []string{"calcutta"}, address: "Kolkata, West Bengal, India", coords: models.Coordinates{Lat: 22.5726, Lng: 88.3639}},
	{name: "hyderabad", address: "Hyderabad, Telangana, India", coords: models.Coordinates{Lat: 17.3850, Lng: 78.4867}},
	{name: "pune", aliases: []string{"poona"}, address: "Pune, Maharashtra, India", coords: models.Coordinates{Lat: 18.5204, Lng: 73.8567}},
}
