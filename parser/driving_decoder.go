package parser

import (
	. "github.com/ttpr0/go-pathfind/util"
)

//*******************************************
// osm decoder
//*******************************************

type IOSMDecoder interface {
	IsValidWay(tags Dict[string, string]) bool
	// returns (oneway, reversed)
	DecodeOneway(tags Dict[string, string]) (bool, bool)
}

func GetDecoder(profile string) (IOSMDecoder, bool) {
	switch profile {
	case "driving", "":
		return &DrivingDecoder{}, true
	case "walking":
		return &WalkingDecoder{}, true
	default:
		return nil, false
	}
}

//*******************************************
// driving decoder
//*******************************************

type DrivingDecoder struct {
}

var driving_types = Dict[string, bool]{"motorway": true, "motorway_link": true, "trunk": true, "trunk_link": true,
	"primary": true, "primary_link": true, "secondary": true, "secondary_link": true, "tertiary": true, "tertiary_link": true,
	"residential": true, "living_street": true, "service": true, "track": true, "unclassified": true, "road": true}

func (self *DrivingDecoder) IsValidWay(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	if !driving_types.ContainsKey(tags.Get("highway")) {
		return false
	}
	if tags.Get("access") == "no" || tags.Get("motor_vehicle") == "no" {
		return false
	}
	return true
}
func (self *DrivingDecoder) DecodeOneway(tags Dict[string, string]) (bool, bool) {
	return _IsOneway(tags.Get("oneway"), tags.Get("highway"), tags.Get("junction"))
}

//*******************************************
// walking decoder
//*******************************************

type WalkingDecoder struct {
}

var walking_types = Dict[string, bool]{"primary": true, "primary_link": true, "secondary": true, "secondary_link": true,
	"tertiary": true, "tertiary_link": true, "residential": true, "living_street": true, "service": true, "track": true,
	"unclassified": true, "road": true, "footway": true, "path": true, "pedestrian": true, "steps": true, "cycleway": true,
	"bridleway": true}

func (self *WalkingDecoder) IsValidWay(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	if !walking_types.ContainsKey(tags.Get("highway")) {
		return false
	}
	if tags.Get("foot") == "no" || tags.Get("access") == "no" {
		return false
	}
	return true
}

// pedestrians may walk both directions of oneway streets
func (self *WalkingDecoder) DecodeOneway(tags Dict[string, string]) (bool, bool) {
	return false, false
}
