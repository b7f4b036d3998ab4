//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"errors"
	"syscall/js"

	"github.com/sirupsen/logrus"

	"textlens/config"
	"textlens/internal/adapter/lexicon"
	"textlens/internal/domain"
	"textlens/internal/logger"
	"textlens/internal/usecase"
)

var (
	lex *lexicon.Lexicon
	uc  *usecase.AnalyzeUseCase
)

func init() {
	logger.Log.SetLevel(logrus.WarnLevel)
	lex = lexicon.Builtin()
	uc = usecase.NewAnalyzeUseCase(config.DefaultConfig(), lex, nil, logger.Log)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("textlensAnalyze", js.FuncOf(analyzeText))
	js.Global().Set("textlensValidate", js.FuncOf(validateText))
	js.Global().Set("textlensLexicon", js.FuncOf(lexiconStats))

	<-c
}

// analyzeText runs the local analysis. The browser build never calls out.
func analyzeText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: textlensAnalyze(text)", "usage")
	}

	report, err := uc.Analyze(context.Background(), args[0].String())
	if err != nil {
		return validationError(err)
	}

	return makeResult(map[string]interface{}{
		"result": report.Message,
		"report": report,
	})
}

func validateText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: textlensValidate(text)", "usage")
	}
	if err := uc.Validate(args[0].String()); err != nil {
		return validationError(err)
	}
	return makeResult(map[string]interface{}{
		"valid": true,
	})
}

func lexiconStats(this js.Value, args []js.Value) interface{} {
	s := lex.Stats()
	return makeResult(map[string]interface{}{
		"positive":  s.Positive,
		"negative":  s.Negative,
		"neutral":   s.Neutral,
		"stopwords": s.Stopwords,
	})
}

func validationError(err error) interface{} {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return makeError(verr.Message, string(verr.Kind))
	}
	return makeError(err.Error(), "internal")
}

func makeError(msg, code string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
		"code":  code,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
