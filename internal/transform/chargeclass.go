package transform

import (
	"strings"

	"hostpms-connector/internal/domain/entity"
	"hostpms-connector/pkg/logger"
)

// ChargeClass is the revenue bucket a charge code resolves to.
type ChargeClass int

const (
	ChargeExcluded ChargeClass = iota
	ChargeRoom
	ChargeNoShow
	ChargeOther
)

// Default charge-code sets used when a hotel supplies no configuration.
// ALOJ=accommodation, OB=overbooking, TXCANCEL=cancellation fee.
var (
	DefaultRoomChargeCodes = []string{"ALOJ", "OB", "TXCANCEL"}
	NoShowChargeCodes      = []string{"NOSHOW"}
	ExcludedChargeCodes    = []string{"PA", "PAEXTRA", "BARBEB13"}
)

const salesGroupRoom = "ROOM"
const salesGroupFB = "F&B"

// ChargeClasses holds the per-hotel charge-code sets.
type ChargeClasses struct {
	Room   map[string]bool
	NoShow map[string]bool
	Other  map[string]bool
}

// Class resolves a charge code to its revenue bucket. NOSHOW is always the
// no-show class regardless of configuration; codes in no set are excluded
// from the room ledger entirely.
func (c ChargeClasses) Class(code string) ChargeClass {
	switch {
	case c.NoShow[code]:
		return ChargeNoShow
	case c.Room[code]:
		return ChargeRoom
	case c.Other[code]:
		return ChargeOther
	default:
		return ChargeExcluded
	}
}

// Eligible reports whether revenue on this charge code is summed at all.
func (c ChargeClasses) Eligible(code string) bool {
	return c.Class(code) != ChargeExcluded
}

func toSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, code := range codes {
		set[code] = true
	}
	return set
}

func defaultChargeClasses() ChargeClasses {
	return ChargeClasses{
		Room:   toSet(DefaultRoomChargeCodes),
		NoShow: toSet(NoShowChargeCodes),
		Other:  map[string]bool{},
	}
}

// ExtractChargeClasses derives the Room/No-show/Other sets from a hotel's
// charge configuration. Room membership means the configured sales group
// label equals "ROOM" (case-insensitive); F&B codes are never summed into
// the room ledger. Absent or empty configuration falls back to the default
// sets with a warning rather than aborting.
func ExtractChargeClasses(config *entity.HotelConfigResponse, log logger.Logger) ChargeClasses {
	if config == nil {
		log.Warn("No hotel config provided, using default charge codes",
			"defaultCodes", DefaultRoomChargeCodes)
		return defaultChargeClasses()
	}

	excluded := toSet(ExcludedChargeCodes)
	classes := ChargeClasses{
		Room:   map[string]bool{},
		NoShow: toSet(NoShowChargeCodes),
		Other:  map[string]bool{},
	}

	for _, charge := range config.Charges() {
		if charge.Code == "" {
			continue
		}
		label := strings.ToUpper(strings.TrimSpace(charge.SalesGroup))
		switch {
		case classes.NoShow[charge.Code]:
			// fixed no-show code, configuration cannot reclassify it
		case label == salesGroupRoom:
			classes.Room[charge.Code] = true
		case label == salesGroupFB || excluded[charge.Code]:
			// F&B never contributes to the room ledger
		default:
			classes.Other[charge.Code] = true
		}
	}

	if len(classes.Room) == 0 {
		log.Warn("No ROOM charge codes found in config, using defaults",
			"hotelCode", config.HotelInfo.HotelCode,
			"defaultCodes", DefaultRoomChargeCodes)
		classes.Room = toSet(DefaultRoomChargeCodes)
		return classes
	}

	log.Info("Extracted charge classes from config",
		"hotelCode", config.HotelInfo.HotelCode,
		"roomCodes", len(classes.Room),
		"otherCodes", len(classes.Other))

	return classes
}
