package fetcher

type Outcome int

const (
	FetchedBoth Outcome = iota
	SkippedPrompt
	SkippedInput
	SkippedBoth
)

func outcomeOf(promptCached, inputCached bool) Outcome {
	switch {
	case promptCached && inputCached:
		return SkippedBoth
	case promptCached:
		return SkippedPrompt
	case inputCached:
		return SkippedInput
	default:
		return FetchedBoth
	}
}

func (o Outcome) String() string {
	switch o {
	case FetchedBoth:
		return "fetched prompt and input"
	case SkippedPrompt:
		return "skipped existing prompt"
	case SkippedInput:
		return "skipped existing input"
	case SkippedBoth:
		return "skipped existing prompt and input"
	}
	return "unknown"
}

// PromptState and InputState describe one half of the outcome for display.
func (o Outcome) PromptState() string {
	switch o {
	case SkippedPrompt, SkippedBoth:
		return "cached"
	}
	return "fetched"
}

func (o Outcome) InputState() string {
	switch o {
	case SkippedInput, SkippedBoth:
		return "cached"
	}
	return "fetched"
}

type Result struct {
	Day     int
	Outcome Outcome
}
