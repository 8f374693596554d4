package sentiment

// PatternScorer scores text from a polarity/subjectivity word lexicon:
// the score is the mean polarity of matched words, negated when a
// negation token appears in the two preceding positions. Subjectivity is
// the mean subjectivity of matched words. Text with no lexicon hits
// scores (0, 0).
type PatternScorer struct {
	lexicon map[string]patternEntry
}

type patternEntry struct {
	polarity     float64
	subjectivity float64
}

// NewPatternScorer creates the lexicon-backed polarity scorer.
func NewPatternScorer() *PatternScorer {
	return &PatternScorer{lexicon: patternLexicon}
}

// Metric implements Scorer.
func (s *PatternScorer) Metric() string { return "pattern" }

// Score implements Scorer.
func (s *PatternScorer) Score(text string) (float64, float64) {
	tokens := tokenize(text)

	var polaritySum, subjectivitySum float64
	hits := 0
	for i, token := range tokens {
		entry, ok := s.lexicon[token]
		if !ok {
			continue
		}
		polarity := entry.polarity
		if hasNegation(tokens, i) {
			polarity = -polarity
		}
		polaritySum += polarity
		subjectivitySum += entry.subjectivity
		hits++
	}
	if hits == 0 {
		return 0, 0
	}
	return clamp(polaritySum/float64(hits), -1, 1), clamp(subjectivitySum/float64(hits), 0, 1)
}

// hasNegation reports whether one of the two tokens before position i is
// a negation word.
func hasNegation(tokens []string, i int) bool {
	for j := i - 2; j < i; j++ {
		if j >= 0 && negations[tokens[j]] {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// patternLexicon maps sentiment-bearing words common in financial
// headlines to (polarity, subjectivity).
var patternLexicon = map[string]patternEntry{
	// positive
	"good":          {0.7, 0.6},
	"great":         {0.8, 0.75},
	"excellent":     {1.0, 1.0},
	"strong":        {0.5, 0.4},
	"positive":      {0.5, 0.5},
	"gain":          {0.5, 0.3},
	"gains":         {0.5, 0.3},
	"growth":        {0.5, 0.3},
	"profit":        {0.6, 0.3},
	"profits":       {0.6, 0.3},
	"profitable":    {0.7, 0.4},
	"record":        {0.4, 0.3},
	"beat":          {0.5, 0.4},
	"beats":         {0.5, 0.4},
	"surge":         {0.6, 0.4},
	"surges":        {0.6, 0.4},
	"soar":          {0.7, 0.5},
	"soars":         {0.7, 0.5},
	"rally":         {0.5, 0.4},
	"rallies":       {0.5, 0.4},
	"jump":          {0.4, 0.3},
	"jumps":         {0.4, 0.3},
	"rise":          {0.4, 0.2},
	"rises":         {0.4, 0.2},
	"up":            {0.3, 0.2},
	"upgrade":       {0.6, 0.4},
	"upgrades":      {0.6, 0.4},
	"upgraded":      {0.6, 0.4},
	"bullish":       {0.7, 0.7},
	"outperform":    {0.6, 0.5},
	"outperforms":   {0.6, 0.5},
	"buy":           {0.4, 0.4},
	"success":       {0.7, 0.5},
	"successful":    {0.7, 0.5},
	"win":           {0.6, 0.4},
	"wins":          {0.6, 0.4},
	"boost":         {0.5, 0.3},
	"boosts":        {0.5, 0.3},
	"improve":       {0.5, 0.3},
	"improves":      {0.5, 0.3},
	"improved":      {0.5, 0.3},
	"recovery":      {0.4, 0.3},
	"optimistic":    {0.6, 0.7},
	"upbeat":        {0.6, 0.7},
	"top":           {0.4, 0.4},
	"tops":          {0.4, 0.4},
	"high":          {0.3, 0.3},
	"higher":        {0.3, 0.3},
	"best":          {0.9, 0.7},
	"breakthrough":  {0.7, 0.5},
	"momentum":      {0.3, 0.4},
	"opportunity":   {0.4, 0.5},
	"opportunities": {0.4, 0.5},

	// negative
	"bad":           {-0.7, 0.65},
	"terrible":      {-0.9, 0.9},
	"awful":         {-0.9, 0.9},
	"weak":          {-0.5, 0.4},
	"negative":      {-0.5, 0.5},
	"loss":          {-0.5, 0.3},
	"losses":        {-0.5, 0.3},
	"lose":          {-0.5, 0.3},
	"loses":         {-0.5, 0.3},
	"miss":          {-0.5, 0.4},
	"misses":        {-0.5, 0.4},
	"missed":        {-0.5, 0.4},
	"fall":          {-0.4, 0.2},
	"falls":         {-0.4, 0.2},
	"fell":          {-0.4, 0.2},
	"drop":          {-0.4, 0.3},
	"drops":         {-0.4, 0.3},
	"plunge":        {-0.7, 0.5},
	"plunges":       {-0.7, 0.5},
	"crash":         {-0.8, 0.6},
	"crashes":       {-0.8, 0.6},
	"tumble":        {-0.6, 0.4},
	"tumbles":       {-0.6, 0.4},
	"slump":         {-0.6, 0.4},
	"slumps":        {-0.6, 0.4},
	"decline":       {-0.4, 0.3},
	"declines":      {-0.4, 0.3},
	"down":          {-0.3, 0.2},
	"downgrade":     {-0.6, 0.4},
	"downgrades":    {-0.6, 0.4},
	"downgraded":    {-0.6, 0.4},
	"bearish":       {-0.7, 0.7},
	"underperform":  {-0.6, 0.5},
	"underperforms": {-0.6, 0.5},
	"sell":          {-0.4, 0.4},
	"selloff":       {-0.6, 0.4},
	"fail":          {-0.6, 0.4},
	"fails":         {-0.6, 0.4},
	"failed":        {-0.6, 0.4},
	"failure":       {-0.7, 0.5},
	"risk":          {-0.3, 0.4},
	"risks":         {-0.3, 0.4},
	"risky":         {-0.4, 0.5},
	"fear":          {-0.5, 0.6},
	"fears":         {-0.5, 0.6},
	"worry":         {-0.4, 0.6},
	"worries":       {-0.4, 0.6},
	"concern":       {-0.3, 0.5},
	"concerns":      {-0.3, 0.5},
	"warning":       {-0.5, 0.4},
	"warns":         {-0.5, 0.4},
	"cut":           {-0.3, 0.3},
	"cuts":          {-0.3, 0.3},
	"layoff":        {-0.6, 0.4},
	"layoffs":       {-0.6, 0.4},
	"lawsuit":       {-0.5, 0.4},
	"fraud":         {-0.8, 0.6},
	"scandal":       {-0.7, 0.6},
	"bankruptcy":    {-0.8, 0.5},
	"debt":          {-0.3, 0.3},
	"recession":     {-0.6, 0.5},
	"crisis":        {-0.7, 0.5},
	"low":           {-0.3, 0.3},
	"lower":         {-0.3, 0.3},
	"worst":         {-0.9, 0.7},
	"weakness":      {-0.5, 0.4},
	"volatile":      {-0.3, 0.5},
	"uncertainty":   {-0.4, 0.6},
	"pessimistic":   {-0.6, 0.7},
	"disappointing": {-0.6, 0.6},
	"disappoints":   {-0.6, 0.6},
}
