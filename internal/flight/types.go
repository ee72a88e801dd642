package flight

// Quote is the cheapest priced flight found for one route on one date.
// Price is kept as the string the upstream reported so the public contract
// is unchanged by float formatting; the sorter parses it numerically.
type Quote struct {
	Src   string `json:"src"`
	Dst   string `json:"dst"`
	Price string `json:"price"`
}
