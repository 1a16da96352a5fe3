package dto

// SentimentResponse is the result of /analiz
type SentimentResponse struct {
	Text  string  `json:"metin"`
	Score float64 `json:"analiz_puani"`
	Label string  `json:"duygu_durumu"`
}

// ConversionResponse is the result of a successful /doviz-hesapla
type ConversionResponse struct {
	Unit      string  `json:"birim"`
	Amount    float64 `json:"miktar"`
	Rate      float64 `json:"guncel_kur"`
	Converted float64 `json:"toplam_tl_karsiligi"`
	Source    string  `json:"kaynak"`
}

// ConversionErrorResponse is returned when the rate could not be fetched
type ConversionErrorResponse struct {
	Error string `json:"hata"`
}
