package classifier

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

type IClassifier interface {
	Classify(text string) (Category, map[Category]float64)
	ModelLoaded() bool
}

type classifier struct {
	model *Model
}

// New loads the trained model from CLASSIFIER_MODEL_PATH. A missing or
// unreadable model is not fatal: the service degrades to the keyword
// fallback. The decision happens once, here, not per request.
func New(log *logrus.Logger) IClassifier {
	path := os.Getenv("CLASSIFIER_MODEL_PATH")
	if path == "" {
		path = "models/category_model.json"
	}

	model, err := LoadModel(path)
	if err != nil {
		log.Warn(fmt.Sprintf("Classification model not available at %s, using keyword fallback: %v", path, err))
		return &classifier{}
	}

	log.Info(fmt.Sprintf("Classification model loaded from %s (%d features, %d categories)",
		path, len(model.Vocabulary), len(model.Categories)))
	return &classifier{model: model}
}

// NewWithModel wires an already loaded model; nil means fallback only.
func NewWithModel(model *Model) IClassifier {
	return &classifier{model: model}
}

func (c *classifier) ModelLoaded() bool {
	return c.model != nil
}

func (c *classifier) Classify(text string) (Category, map[Category]float64) {
	if c.model == nil {
		return fallbackClassify(text)
	}
	return c.model.Classify(text)
}
