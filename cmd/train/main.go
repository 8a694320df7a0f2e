package main

import (
	"flag"
	"os"
	"path/filepath"

	"metro-chatbot/pkg/classifier"
	"metro-chatbot/pkg/log"
)

// Fits the category model on the built-in corpus and writes the
// artifact the server loads at startup.
func main() {
	logger := log.NewLogger()

	output := flag.String("out", "models/category_model.json", "path to write the trained model")
	flag.Parse()

	samples := classifier.TrainingData()
	logger.Infof("Training on %d samples", len(samples))

	model, err := classifier.Train(samples)
	if err != nil {
		logger.Fatalf("Training failed: %v", err)
	}

	if dir := filepath.Dir(*output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Fatalf("Failed to create output directory: %v", err)
		}
	}

	if err := model.Save(*output); err != nil {
		logger.Fatalf("Failed to save model: %v", err)
	}

	logger.Infof("Model written to %s (%d features)", *output, len(model.Vocabulary))

	for _, query := range []string{
		"I want to buy a solar panel",
		"Who is the manager?",
		"What products do you have?",
		"Hello, how can you help me?",
		"I need a quote for a generator",
	} {
		category, confidence := model.Classify(query)
		logger.Infof("%q -> %s (%.2f)", query, category, confidence[category])
	}
}
