package dto

// ReportQuery selects the report window
type ReportQuery struct {
	Timeframe string `query:"timeframe" validate:"omitempty,timeframe"`
	Start     string `query:"start" validate:"omitempty,iso_date"`
	End       string `query:"end" validate:"omitempty,iso_date"`
}
