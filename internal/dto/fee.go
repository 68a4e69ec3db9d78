package dto

type FeeQuoteResponse struct {
	Amount     int    `json:"amount"`
	Charge     int    `json:"charge"`
	Received   int    `json:"received"`
	Percentage string `json:"percentage"`
	Currency   string `json:"currency"`
}

type ChargeResponse struct {
	Amount   int    `json:"amount"`
	Charge   int    `json:"charge"`
	Currency string `json:"currency"`
}

type TariffBandResponse struct {
	Min    int `json:"min"`
	Max    int `json:"max"`
	Charge int `json:"charge"`
}
