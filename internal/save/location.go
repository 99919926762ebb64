package save

// Location identifies one place on the game map. Every puzzle is a location.
type Location int

const (
	Map Location = iota
	Prolog
	ALightInTheAttic
	BlackAndBlue
	ColumnAsIcyEm
	ConnectTheDots
	CrossSauce
	CrossTheLine
	CubeTangle
	Disconnected
	DoubleCross
	FactOrFiction
	HexSpangled
	IceToMeetYou
	IfMemoryServes
	JogYourMemory
	LevelHeaded
	LevelUp
	LightSyrup
	LogLevel
	MemoryLane
	MissedConnections
	PasswordFile
	PlaneAndSimple
	PlaneAsDay
	PointOfOrder
	ShiftGears
	ShiftTheBlame
	ShiftingGround
	StarCrossed
	SystemFailure
	SystemSyzygy
	TheIceIsRight
	TheYFactor
	TreadLightly
	VirtueOrIce
	WhatchaColumn
	WreckedAngle

	numLocations
)

type locationInfo struct {
	key     string
	name    string
	next    Location
	prereqs []Location
}

var locations = [numLocations]locationInfo{
	Map:               {"map", "The Map", Map, nil},
	Prolog:            {"prolog", "Prolog", Disconnected, nil},
	ALightInTheAttic:  {"a_light_in_the_attic", "A Light in the Attic", LightSyrup, []Location{Prolog}},
	BlackAndBlue:      {"black_and_blue", "Black and Blue", ShiftTheBlame, nil},
	ColumnAsIcyEm:     {"column_as_icy_em", "Column as Icy `Em", Map, nil},
	ConnectTheDots:    {"connect_the_dots", "Connect the Dots", MissedConnections, nil},
	CrossSauce:        {"cross_sauce", "Cross Sauce", StarCrossed, []Location{DoubleCross}},
	CrossTheLine:      {"cross_the_line", "Cross the Line", Map, []Location{Prolog}},
	CubeTangle:        {"cube_tangle", "Cube Tangle", HexSpangled, []Location{ShiftingGround}},
	Disconnected:      {"disconnected", "Disconnected", LogLevel, []Location{Prolog}},
	DoubleCross:       {"double_cross", "Double-Cross", CrossSauce, nil},
	FactOrFiction:     {"fact_or_fiction", "Fact or Fiction", Map, []Location{TheYFactor}},
	HexSpangled:       {"hex_spangled", "Hex-Spangled", Map, []Location{CubeTangle}},
	IceToMeetYou:      {"ice_to_meet_you", "Ice to Meet You", TheIceIsRight, nil},
	IfMemoryServes:    {"if_memory_serves", "If Memory Serves", JogYourMemory, []Location{MemoryLane}},
	JogYourMemory:     {"jog_your_memory", "Jog Your Memory", Map, []Location{IfMemoryServes}},
	LevelHeaded:       {"level_headed", "Level-Headed", Map, []Location{LevelUp}},
	LevelUp:           {"level_up", "Level Up", LevelHeaded, nil},
	LightSyrup:        {"light_syrup", "Light Syrup", TreadLightly, []Location{ALightInTheAttic}},
	LogLevel:          {"log_level", "Log Level", SystemFailure, []Location{Disconnected}},
	MemoryLane:        {"memory_lane", "Memory Lane", JogYourMemory, []Location{HexSpangled}},
	MissedConnections: {"missed_connections", "Missed Connections", Map, []Location{ConnectTheDots}},
	PasswordFile:      {"password_file", "Password File", SystemSyzygy, []Location{SystemFailure}},
	PlaneAndSimple:    {"plane_and_simple", "Plane and Simple", PlaneAsDay, nil},
	PlaneAsDay:        {"plane_as_day", "Plane as Day", Map, []Location{PlaneAndSimple}},
	PointOfOrder:      {"point_of_order", "Point of Order", ColumnAsIcyEm, nil},
	ShiftGears:        {"shift_gears", "Shift Gears", Map, nil},
	ShiftTheBlame:     {"shift_the_blame", "Shift the Blame", Map, []Location{BlackAndBlue}},
	ShiftingGround:    {"shifting_ground", "Shifting Ground", CubeTangle, []Location{WreckedAngle}},
	StarCrossed:       {"star_crossed", "Star-Crossed", Map, []Location{CrossSauce}},
	SystemFailure:     {"system_failure", "System Failure", PasswordFile, []Location{LogLevel}},
	SystemSyzygy:      {"system_syzygy", "System Syzygy", Map, []Location{PasswordFile}},
	TheIceIsRight:     {"the_ice_is_right", "The Ice is Right", VirtueOrIce, []Location{IceToMeetYou}},
	TheYFactor:        {"the_y_factor", "The Y Factor", FactOrFiction, []Location{Prolog}},
	TreadLightly:      {"tread_lightly", "Tread Lightly", IceToMeetYou, []Location{LightSyrup}},
	VirtueOrIce:       {"virtue_or_ice", "Virtue or Ice", Map, []Location{TheIceIsRight}},
	WhatchaColumn:     {"whatcha_column", "Whatcha Column", PointOfOrder, nil},
	WreckedAngle:      {"wrecked_angle", "Wrecked Angle", ShiftingGround, []Location{Prolog}},
}

// AllLocations returns every location in declaration order.
func AllLocations() []Location {
	all := make([]Location, numLocations)
	for i := range all {
		all[i] = Location(i)
	}
	return all
}

func (l Location) info() locationInfo {
	if l < 0 || l >= numLocations {
		return locations[Map]
	}
	return locations[l]
}

// Key returns the stable identifier used in save files and on the command line.
func (l Location) Key() string { return l.info().key }

// Name returns the display title.
func (l Location) Name() string { return l.info().name }

// Next returns the location the player is sent to after solving this one.
func (l Location) Next() Location { return l.info().next }

// Prereqs returns the locations that must be solved before this one unlocks.
func (l Location) Prereqs() []Location { return l.info().prereqs }

func (l Location) String() string { return l.Key() }

// ParseLocation looks a location up by key. Unknown keys yield Map.
func ParseLocation(key string) (Location, bool) {
	for i := range locations {
		if locations[i].key == key {
			return Location(i), true
		}
	}
	return Map, false
}
