package request

type CreateHotelRequest struct {
	Name string `json:"name" binding:"required"`
}

type RenameHotelRequest struct {
	NewName string `json:"new_name" binding:"required"`
}

type AddRoomRequest struct {
	Name      string  `json:"name" binding:"required"`
	BasePrice float64 `json:"base_price" binding:"required"`
	Category  string  `json:"category" binding:"required"`
}

type UpdateBasePriceRequest struct {
	NewPrice float64 `json:"new_price" binding:"required"`
}

// Dates arrive as YYYY-MM-DD strings; handlers parse them with the shared
// dates helpers so binding errors and format errors surface the same way.
type AddRateWindowRequest struct {
	StartDate  string  `json:"start_date" binding:"required"`
	EndDate    string  `json:"end_date" binding:"required"`
	Multiplier float64 `json:"multiplier" binding:"required"`
}
