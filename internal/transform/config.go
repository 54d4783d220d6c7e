package transform

import (
	"sort"
	"time"

	"hostpms-connector/internal/domain/entity"
	"hostpms-connector/pkg/logger"
	"hostpms-connector/pkg/utils"
)

// segmentTypeMap pairs a PMS config type with the collection list it
// lands in.
var segmentTypeMap = []struct {
	configType string
	assign     func(*entity.SegmentCollection, []entity.SegmentItem)
}{
	{entity.ConfigTypeAgency, func(c *entity.SegmentCollection, s []entity.SegmentItem) { c.Agencies = s }},
	{entity.ConfigTypeChannel, func(c *entity.SegmentCollection, s []entity.SegmentItem) { c.Channels = s }},
	{entity.ConfigTypeCompany, func(c *entity.SegmentCollection, s []entity.SegmentItem) { c.Companies = s }},
	{entity.ConfigTypeCro, func(c *entity.SegmentCollection, s []entity.SegmentItem) { c.Cros = s }},
	{entity.ConfigTypeGroup, func(c *entity.SegmentCollection, s []entity.SegmentItem) { c.Groups = s }},
	{entity.ConfigTypePackage, func(c *entity.SegmentCollection, s []entity.SegmentItem) { c.Packages = s }},
	{entity.ConfigTypePriceList, func(c *entity.SegmentCollection, s []entity.SegmentItem) { c.Rates = s }},
	{entity.ConfigTypeCategory, func(c *entity.SegmentCollection, s []entity.SegmentItem) { c.Rooms = s }},
	{entity.ConfigTypeSegment, func(c *entity.SegmentCollection, s []entity.SegmentItem) { c.Segments = s }},
	{entity.ConfigTypeSubSegment, func(c *entity.SegmentCollection, s []entity.SegmentItem) { c.SubSegments = s }},
}

// TransformConfig maps the raw /config payload into the hotel
// configuration artifact and the segment lists the downstream platform
// expects. Every segment list leads with the UNASSIGNED sentinel so the
// ledger's defaulted codes always resolve.
func TransformConfig(response *entity.HotelConfigResponse, log logger.Logger) (*entity.HotelConfigData, *entity.SegmentCollection) {
	data := &entity.HotelConfigData{
		HotelCode: response.HotelInfo.HotelCode,
		HotelName: response.HotelInfo.HotelName,
	}

	for _, item := range response.Rooms() {
		if !item.Active {
			continue
		}
		data.Rooms = append(data.Rooms, entity.RoomDefinition{
			Code:     item.Code,
			Name:     item.Description,
			Capacity: item.Inventory,
			Category: item.SalesGroup,
		})
		data.RoomCount += item.Inventory
	}
	sort.Slice(data.Rooms, func(i, j int) bool { return data.Rooms[i].Code < data.Rooms[j].Code })

	segments := &entity.SegmentCollection{}
	for _, mapping := range segmentTypeMap {
		mapping.assign(segments, buildSegmentList(response.ByType(mapping.configType), mapping.configType))
	}

	log.Info("Hotel configuration transformed",
		"hotelCode", data.HotelCode,
		"rooms", len(data.Rooms),
		"roomCount", data.RoomCount,
		"segments", segments.TotalCount())

	return data, segments
}

func buildSegmentList(items []entity.ConfigItem, segmentType string) []entity.SegmentItem {
	list := []entity.SegmentItem{{
		Code:           entity.SegmentUnassigned,
		Name:           "Unassigned",
		EnabledOtb:     true,
		EnabledRevenue: true,
		Position:       1,
		Type:           segmentType,
	}}
	for _, item := range items {
		if !item.Active {
			continue
		}
		list = append(list, entity.SegmentItem{
			Code:           item.Code,
			Name:           item.Description,
			EnabledOtb:     true,
			EnabledRevenue: true,
			Position:       len(list) + 1,
			Type:           segmentType,
		})
	}
	return list
}

// BuildRoomInventory derives the per-room-type inventory artifact from the
// configuration payload, valid from asOf onwards.
func BuildRoomInventory(response *entity.HotelConfigResponse, asOf time.Time) *entity.RoomInventoryData {
	inventory := &entity.RoomInventoryData{}
	validFrom := utils.OpenEndedRange(asOf)

	for _, item := range response.Rooms() {
		if !item.Active {
			continue
		}
		inventory.RoomInventory = append(inventory.RoomInventory, entity.RoomInventoryItem{
			CalendarDate: validFrom,
			Inventory:    item.Inventory,
			RoomCode:     item.Code,
		})
	}
	sort.Slice(inventory.RoomInventory, func(i, j int) bool {
		return inventory.RoomInventory[i].RoomCode < inventory.RoomInventory[j].RoomCode
	})

	return inventory
}
