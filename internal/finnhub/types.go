package finnhub

// Quote is the raw Finnhub quote payload. Finnhub may omit any field, so
// all numerics are pointers; absent upstream fields stay absent downstream.
type Quote struct {
	CurrentPrice  *float64 `json:"c"`
	Change        *float64 `json:"d"`
	PercentChange *float64 `json:"dp"`
	HighOfDay     *float64 `json:"h"`
	LowOfDay      *float64 `json:"l"`
	OpenPrice     *float64 `json:"o"`
	PreviousClose *float64 `json:"pc"`
	Timestamp     *int64   `json:"t"`
}

// Profile is the raw Finnhub company profile payload (the profile2
// endpoint). Only the fields the tools expose are decoded.
type Profile struct {
	Name                 string  `json:"name"`
	Country              string  `json:"country"`
	Currency             string  `json:"currency"`
	Exchange             string  `json:"exchange"`
	IPO                  string  `json:"ipo"`
	MarketCapitalization float64 `json:"marketCapitalization"`
	Industry             string  `json:"finnhubIndustry"`
	WebURL               string  `json:"weburl"`
	Logo                 string  `json:"logo"`
}

// Article is one raw Finnhub company-news item.
type Article struct {
	Category string `json:"category"`
	DateTime int64  `json:"datetime"`
	Headline string `json:"headline"`
	ID       int64  `json:"id"`
	Image    string `json:"image"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}
