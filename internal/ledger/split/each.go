package split

// EachStrategy is "everyone covers their own share": the computation is
// identical to EqualStrategy, but it keeps its own tag because the app
// presents it as a distinct choice.
type EachStrategy struct {
	EqualStrategy
}

func (s *EachStrategy) Type() Type { return TypeEach }
