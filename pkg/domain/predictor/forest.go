package predictor

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed model.json
var embeddedModel []byte

// treeNode is one node of a regression tree. Internal nodes split on
// vec[F] <= T; leaves carry F == -1 and the value in V.
type treeNode struct {
	F int     `json:"f"`
	T float64 `json:"t,omitempty"`
	L int     `json:"l,omitempty"`
	R int     `json:"r,omitempty"`
	V float64 `json:"v,omitempty"`
}

type tree struct {
	Nodes []treeNode `json:"nodes"`
}

func (t *tree) eval(vec FeatureVector) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.F < 0 {
			return n.V
		}
		if n.F < len(vec) && vec[n.F] <= n.T {
			i = n.L
		} else {
			i = n.R
		}
	}
}

// modelFile is the exported model artifact: the input schema, the
// per-target tree ensembles, and training metadata.
type modelFile struct {
	Schema  Schema             `json:"schema"`
	Targets []string           `json:"targets"`
	Trees   map[string][]tree  `json:"trees"`
	R2      map[string]float64 `json:"r2_scores"`
	Samples int                `json:"training_samples"`
}

// Forest is a multi-output regression forest: each target's prediction
// is the mean of its trees' outputs. Loaded once; read-only afterwards.
type Forest struct {
	schema  Schema
	targets []string
	trees   map[string][]tree
	r2      map[string]float64
	samples int
}

// LoadEmbedded loads the model artifact compiled into the binary.
func LoadEmbedded() (*Forest, error) {
	return parseModel(embeddedModel)
}

// Load reads a model artifact from disk, for swapping in retrained
// models without rebuilding.
func Load(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}
	return parseModel(data)
}

func parseModel(data []byte) (*Forest, error) {
	var mf modelFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	if len(mf.Targets) == 0 || len(mf.Trees) == 0 {
		return nil, fmt.Errorf("model has no trees")
	}
	for _, target := range mf.Targets {
		if len(mf.Trees[target]) == 0 {
			return nil, fmt.Errorf("model missing trees for target %q", target)
		}
	}
	return &Forest{
		schema:  mf.Schema,
		targets: mf.Targets,
		trees:   mf.Trees,
		r2:      mf.R2,
		samples: mf.Samples,
	}, nil
}

func (f *Forest) Schema() *Schema { return &f.schema }

// R2Scores returns the per-target R² recorded at training time.
func (f *Forest) R2Scores() map[string]float64 { return f.r2 }

// Predict runs one feature vector through every ensemble.
func (f *Forest) Predict(vec FeatureVector) (Targets, error) {
	if len(vec) != f.schema.Width() {
		return Targets{}, fmt.Errorf("%w: vector width %d, schema expects %d", ErrModelUnavailable, len(vec), f.schema.Width())
	}

	var t Targets
	for _, target := range f.targets {
		trees := f.trees[target]
		var sum float64
		for i := range trees {
			sum += trees[i].eval(vec)
		}
		value := sum / float64(len(trees))

		switch target {
		case "sets":
			t.Sets = value
		case "reps":
			t.Reps = value
		case "intensity":
			t.Intensity = value
		case "weight":
			t.Weight = value
		case "rpe":
			t.RPE = value
		}
	}
	return t, nil
}

// PredictBatch evaluates a batch of vectors. Output order matches input
// order.
func (f *Forest) PredictBatch(vecs []FeatureVector) ([]Targets, error) {
	out := make([]Targets, len(vecs))
	for i, vec := range vecs {
		t, err := f.Predict(vec)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// defaultSchema mirrors the embedded model's encoding so the vectorizer
// remains usable when the model itself fails to load.
func defaultSchema() Schema {
	if mf, err := parseModel(embeddedModel); err == nil {
		return mf.schema
	}
	return Schema{
		Numeric: []NumericFeature{
			{Name: "age", Mean: 31.5, Std: 10.4},
			{Name: "training_days", Mean: 3.8, Std: 1.2},
		},
	}
}
