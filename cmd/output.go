package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rjNemo/underscore"

	"github.com/glossopoeia/pts/kernel"
	"github.com/glossopoeia/pts/kernel/term"
)

// The JSON envelope every command writes in json format.
type Response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

type BindingView struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type JudgementView struct {
	Context []BindingView `json:"context"`
	Subject string        `json:"subject"`
	Type    string        `json:"type"`
}

func viewJudgement(j kernel.Judgement) JudgementView {
	ctx := j.Context()
	view := kernel.Extract(j, func(subject term.Term, typ term.Term) JudgementView {
		if subject == nil {
			return JudgementView{}
		}
		return JudgementView{Subject: subject.String(), Type: typ.String()}
	})
	view.Context = underscore.Map(ctx.Keys(), func(tok term.Token) BindingView {
		typ, _ := ctx.Lookup(tok)
		return BindingView{tok.String(), typ.String()}
	})
	return view
}

type formatter struct {
	format string
	w      io.Writer
}

func (f formatter) writeJSON(resp Response) error {
	enc := json.NewEncoder(f.w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func (f formatter) judgement(j kernel.Judgement) error {
	if f.format == "json" {
		return f.writeJSON(Response{Status: "ok", Data: viewJudgement(j)})
	}
	_, err := fmt.Fprintln(f.w, j)
	return err
}

func (f formatter) failure(err error) error {
	if f.format == "json" {
		if werr := f.writeJSON(Response{Status: "error", Error: err.Error()}); werr != nil {
			return werr
		}
	}
	return err
}
