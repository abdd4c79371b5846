package entities

// SurveySummary é o agregado pronto para exibição dos resultados de uma
// pesquisa. Com zero respostas os mapas ficam vazios e a média é 0.
type SurveySummary struct {
	TotalResponses         int64                     `json:"total_responses"`
	AverageValidationScore float64                   `json:"average_validation_score"`
	AggregatedResponses    map[string]map[string]int `json:"aggregated_responses"`
	AggregatedDemographics map[string]map[string]int `json:"aggregated_demographics"`
}
