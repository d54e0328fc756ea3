package forecast

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown      Condition = "unknown"
	ConditionClear        Condition = "clear"
	ConditionPartlyCloudy Condition = "partly_cloudy"
	ConditionCloudy       Condition = "cloudy"
	ConditionRain         Condition = "rain"
	ConditionShowers      Condition = "showers"
	ConditionStorm        Condition = "storm"
	ConditionFog          Condition = "fog"
	ConditionFrost        Condition = "frost"
	ConditionSnow         Condition = "snow"
)

// ConditionInfo is the decoded form of a compact forecast condition code.
type ConditionInfo struct {
	Kind        Condition
	Description string
	Glyph       string
}

// conditionTable maps the forecast service's compact codes. Extending the
// decoder is adding an entry here; call sites never change.
var conditionTable = map[string]ConditionInfo{
	"c":   {ConditionClear, "Sol", "☀️"},
	"ci":  {ConditionPartlyCloudy, "Parcialmente nublado", "🌤️"},
	"pnt": {ConditionShowers, "Pancadas de chuva à tarde", "⛅"},
	"pn":  {ConditionShowers, "Pancadas de chuva à noite", "🌧️"},
	"ps":  {ConditionShowers, "Pancadas de chuva pela manhã", "🌧️"},
	"e":   {ConditionStorm, "Encoberto com chuvas isoladas", "🌩️"},
	"n":   {ConditionCloudy, "Nublado", "☁️"},
	"cv":  {ConditionRain, "Chuvisco", "🌦️"},
	"ch":  {ConditionRain, "Chuvoso", "🌧️"},
	"t":   {ConditionStorm, "Tempestade", "⛈️"},
	"np":  {ConditionShowers, "Nublado com pancadas de chuva", "🌧️"},
	"cn":  {ConditionFog, "Cerrado de névoa", "🌫️"},
	"nv":  {ConditionFog, "Neblina", "🌫️"},
	"g":   {ConditionFrost, "Geada", "❄️"},
	"ne":  {ConditionSnow, "Neve", "🌨️"},
	"pp":  {ConditionShowers, "Possibilidade de pancadas de chuva", "🌦️"},
	"cm":  {ConditionRain, "Chuva pela manhã", "🌧️"},
	"pc":  {ConditionShowers, "Pancadas de chuva", "🌧️"},
	"pt":  {ConditionRain, "Chuva à tarde", "🌧️"},
	"cl":  {ConditionClear, "Céu claro", "☀️"},
	"vn":  {ConditionPartlyCloudy, "Variação de nebulosidade", "🌤️"},
	"ec":  {ConditionRain, "Encoberto com chuva", "🌧️"},
	"pm":  {ConditionShowers, "Pancadas de chuva durante a manhã", "🌦️"},
	"in":  {ConditionShowers, "Tempo instável", "🌦️"},
	"pnc": {ConditionRain, "Possibilidade de chuva à noite", "🌧️"},
	// Upstream's own "not defined" marker: explicit entry so it keeps its
	// proper wording instead of the generic fallback.
	"nd": {ConditionUnknown, "Não definido", ""},
}

// DecodeCondition resolves a compact condition code. It is total: unknown
// codes decode to ConditionUnknown, never an error.
func DecodeCondition(code string) ConditionInfo {
	if info, ok := conditionTable[code]; ok {
		return info
	}
	return ConditionInfo{Kind: ConditionUnknown, Description: "Condição desconhecida"}
}
