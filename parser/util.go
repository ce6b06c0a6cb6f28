package parser

import (
	"strings"
)

//*******************************************
// utility methods
//*******************************************

// Returns (oneway, reversed) for an osm oneway tag value. Motorways and trunks
// are oneway by default.
func _IsOneway(oneway string, highway string, junction string) (bool, bool) {
	switch strings.ToLower(oneway) {
	case "yes", "true", "1":
		return true, false
	case "-1", "reverse":
		return true, true
	case "no", "false", "0":
		return false, false
	}
	if highway == "motorway" || highway == "trunk" || highway == "motorway_link" || highway == "trunk_link" {
		return true, false
	}
	if junction == "roundabout" || junction == "circular" {
		return true, false
	}
	return false, false
}

// Interprets a generic property value (bool, number or string) as a oneway flag.
func _ParseOnewayValue(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, false
	case float64:
		if v == -1 {
			return true, true
		}
		return v == 1, false
	case int:
		if v == -1 {
			return true, true
		}
		return v == 1, false
	case string:
		oneway, reversed := _IsOneway(v, "", "")
		return oneway, reversed
	}
	return false, false
}

func _ReverseCoords[T any](coords []T) {
	for i, j := 0, len(coords)-1; i < j; i, j = i+1, j-1 {
		coords[i], coords[j] = coords[j], coords[i]
	}
}
