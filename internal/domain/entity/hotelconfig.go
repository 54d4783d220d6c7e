package entity

// Config item types returned by the Host PMS /config endpoint.
const (
	ConfigTypeCategory    = "CATEGORY"
	ConfigTypeSegment     = "SEGMENT"
	ConfigTypeSubSegment  = "SUB-SEGMENT"
	ConfigTypeChannel     = "DIST CHANNEL"
	ConfigTypePackage     = "PACKAGE"
	ConfigTypePriceList   = "PRICELIST"
	ConfigTypeCharge      = "CHARGE"
	ConfigTypeAgency      = "AGENCY"
	ConfigTypeCompany     = "COMPANY"
	ConfigTypeGroup       = "GROUP"
	ConfigTypeCro         = "CRO"
	ConfigTypeResStatuses = "RESERVATION STATUS"
)

// ConfigItem is a generic configuration row: rooms (CATEGORY), segments,
// channels, packages, price lists, charges and so on.
type ConfigItem struct {
	ConfigType  string `json:"ConfigType"`
	ConfigID    int    `json:"ConfigId"`
	Code        string `json:"Code"`
	Description string `json:"Description"`
	Inventory   int    `json:"Inventory"`
	SalesGroup  string `json:"SalesGroup"`
	Active      bool   `json:"Active"`
}

// HotelInfo describes the property itself, including its local clock.
type HotelInfo struct {
	HotelID      int64   `json:"HotelId"`
	HotelCode    string  `json:"HotelCode"`
	HotelName    string  `json:"HotelName"`
	FiscalNumber string  `json:"FiscalNumber"`
	HotelDate    APITime `json:"HotelDate"`
	LocalTime    APITime `json:"LocalTime"`
	HotelEmail   string  `json:"HotelEmail"`
}

// HotelConfigResponse is the full /config payload.
type HotelConfigResponse struct {
	ConfigInfo []ConfigItem `json:"ConfigInfo"`
	HotelInfo  HotelInfo    `json:"HotelInfo"`
}

// ByType filters configuration items by their ConfigType.
func (c *HotelConfigResponse) ByType(configType string) []ConfigItem {
	var items []ConfigItem
	for _, item := range c.ConfigInfo {
		if item.ConfigType == configType {
			items = append(items, item)
		}
	}
	return items
}

// Charges returns all charge-code configuration rows.
func (c *HotelConfigResponse) Charges() []ConfigItem {
	return c.ByType(ConfigTypeCharge)
}

// Rooms returns all room category rows.
func (c *HotelConfigResponse) Rooms() []ConfigItem {
	return c.ByType(ConfigTypeCategory)
}

// RoomDefinition is a room type in the target schema.
type RoomDefinition struct {
	Code     string `json:"code" bson:"code"`
	Name     string `json:"name" bson:"name"`
	Capacity int    `json:"capacity" bson:"capacity"`
	Category string `json:"category" bson:"category"`
}

// HotelConfigData is the transformed hotel configuration artifact.
type HotelConfigData struct {
	HotelCode string           `json:"hotelCode" bson:"hotelCode"`
	HotelName string           `json:"hotelName" bson:"hotelName"`
	Rooms     []RoomDefinition `json:"rooms" bson:"rooms"`
	RoomCount int              `json:"roomCount" bson:"roomCount"`
}
