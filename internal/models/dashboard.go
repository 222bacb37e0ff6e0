package models

// DashboardStats aggregates per-dealer counts for the dashboard screen.
type DashboardStats struct {
	TotalVehicles     int            `json:"total_vehicles"`
	VehiclesByStatus  map[string]int `json:"vehicles_by_status"`
	TotalClients      int            `json:"total_clients"`
	ActiveContracts   int            `json:"active_contracts"`
	InsuranceByStatus map[string]int `json:"insurance_by_status"`
}
