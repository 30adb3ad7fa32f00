package vanilla

type BirchForest struct {
	standard
}

func (BirchForest) ID() int {
	return 27
}

func (BirchForest) Name() string {
	return "Birch Forest"
}

func (BirchForest) Elevation() (base, variation float64) {
	return 0.1, 0.2
}

func (BirchForest) Temperature() float64 {
	return 0.6
}

func (BirchForest) Rainfall() float64 {
	return 0.6
}
