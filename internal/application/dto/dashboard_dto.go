package dto

import "github.com/shopspring/decimal"

// DashboardResponse agregados para la pantalla principal.
type DashboardResponse struct {
	Orders struct {
		Pending    int `json:"pendiente"`
		Processing int `json:"en_proceso"`
		Awaiting   int `json:"por_despachar"`
		Done       int `json:"completada"`
	} `json:"orders"`
	Purchases struct {
		Draft     int `json:"borrador"`
		Sent      int `json:"enviada"`
		Partial   int `json:"entrega_parcial"`
		Completed int `json:"completada"`
	} `json:"purchases"`
	LowStockItems   []ItemResponse  `json:"low_stock_items"`
	MonthOrderTotal decimal.Decimal `json:"month_order_total"`
}
