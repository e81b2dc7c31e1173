package quote

// GlobalInstrument is one entry of the static overseas catalog: the polled
// instrument set is fixed, not discovered.
type GlobalInstrument struct {
	Code     string
	Name     string
	Exchange string
}

// GlobalInstruments is the overseas instrument catalog polled over REST.
var GlobalInstruments = []GlobalInstrument{
	{Code: "TSLA", Name: "Tesla", Exchange: "NAS"},
	{Code: "AAPL", Name: "Apple", Exchange: "NAS"},
	{Code: "NVDA", Name: "NVIDIA", Exchange: "NAS"},
	{Code: "MSFT", Name: "Microsoft", Exchange: "NAS"},
	{Code: "AMZN", Name: "Amazon", Exchange: "NAS"},
	{Code: "GOOG", Name: "Alphabet", Exchange: "NAS"},
	{Code: "META", Name: "Meta Platforms", Exchange: "NAS"},
	{Code: "AMD", Name: "AMD", Exchange: "NAS"},
	{Code: "NFLX", Name: "Netflix", Exchange: "NAS"},
	{Code: "BRK/B", Name: "Berkshire Hathaway B", Exchange: "NYS"},
	{Code: "TSM", Name: "TSMC", Exchange: "NYS"},
	{Code: "BABA", Name: "Alibaba", Exchange: "NYS"},
	{Code: "NIO", Name: "NIO", Exchange: "NYS"},
	{Code: "XOM", Name: "Exxon Mobil", Exchange: "NYS"},
	{Code: "KO", Name: "Coca-Cola", Exchange: "NYS"},
	{Code: "JPM", Name: "JPMorgan Chase", Exchange: "NYS"},
	{Code: "V", Name: "Visa", Exchange: "NYS"},
	{Code: "09988", Name: "Alibaba (HK)", Exchange: "HKS"},
	{Code: "09618", Name: "JD.com", Exchange: "HKS"},
	{Code: "00700", Name: "Tencent", Exchange: "HKS"},
}

// ForexPair is one entry of the static currency pair catalog.
type ForexPair struct {
	Code string
	Name string
}

// ForexPairs is the currency pair catalog polled over REST. The websocket
// stream additionally carries the first pair in real time.
var ForexPairs = []ForexPair{
	{Code: "USD/KRW", Name: "US Dollar / Korean Won"},
	{Code: "JPY/KRW", Name: "Japanese Yen / Korean Won"},
}

// ExchangeForCode returns the exchange code of an overseas instrument,
// defaulting to NYS for codes outside the catalog.
func ExchangeForCode(code string) string {
	for _, instrument := range GlobalInstruments {
		if instrument.Code == code {
			return instrument.Exchange
		}
	}
	return "NYS"
}
