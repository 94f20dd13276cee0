package intent

import "regexp"

type patternSet struct {
	intent   Intent
	patterns []*regexp.Regexp
}

// intentPatterns is a slice, not a map: iteration order IS the tie-break
// order. Unknown carries no patterns; it is the floor every other intent
// has to beat.
var intentPatterns = []patternSet{
	{
		intent: Greeting,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(?:hi|hello|hey|namaste)\b`),
			regexp.MustCompile(`\bgood (?:morning|afternoon|evening)\b`),
			regexp.MustCompile(`^greetings\b`),
		},
	},
	{
		intent: Help,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bhelp\b`),
			regexp.MustCompile(`\bwhat can you do\b`),
			regexp.MustCompile(`\bhow (?:do|does) (?:you|this|it) work\b`),
		},
	},
	{
		intent: Goodbye,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(?:bye|goodbye|see you|exit|quit)\b`),
			regexp.MustCompile(`\bgood night\b`),
		},
	},
	{
		intent: Thanks,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(?:thanks|thank you|thankyou|thx)\b`),
			regexp.MustCompile(`\bappreciate\b`),
		},
	},
	{
		intent: TravelSearch,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(?:go|travel|journey|trip|reach|visit)\b`),
			regexp.MustCompile(`\b(?:bus|buses|train|trains)\b`),
			regexp.MustCompile(`\bfrom\b.*\bto\b`),
			regexp.MustCompile(`\b(?:book|find|search|show me|looking for)\b`),
			regexp.MustCompile(`\btickets?\b`),
		},
	},
	{
		intent: ScheduleQuery,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(?:schedule|timetable|timings?|departures?)\b`),
			regexp.MustCompile(`\bwhat time\b`),
			regexp.MustCompile(`\bwhen (?:does|do|is|will)\b`),
			regexp.MustCompile(`\b(?:leaves?|departs?)\b`),
		},
	},
	{
		intent: PriceQuery,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(?:price|prices|cost|costs|fare|fares)\b`),
			regexp.MustCompile(`\bhow much\b`),
			regexp.MustCompile(`\b(?:expensive|cheap|cheaper|cheapest)\b`),
		},
	},
	{
		intent: CompareRoutes,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(?:compare|comparison|difference|versus|vs)\b`),
			regexp.MustCompile(`\bwhich (?:is|one is) (?:better|best|faster|cheaper)\b`),
		},
	},
	{
		intent: SelectRoute,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(?:option|choose|select|pick|take)\b`),
			regexp.MustCompile(`\b(?:first|second|third) (?:one|option|route)\b`),
			regexp.MustCompile(`\b(?:option|route|number)\s*\d+\b`),
			regexp.MustCompile(`^\s*\d+\s*$`),
		},
	},
	{
		intent: RoutePreference,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\bprefer(?:ence)?s?\b`),
			regexp.MustCompile(`\b(?:rather|instead)\b`),
			regexp.MustCompile(`\bonly (?:ac|non[- ]?ac|sleeper|seater|volvo|bus|train)\b`),
		},
	},
	{
		intent:   Unknown,
		patterns: nil,
	},
}
