package md2docx_test

import (
	"context"
	"fmt"
	"log"

	md2docx "github.com/alnah/go-md2docx"
)

func ExampleNewConverter() {
	conv, err := md2docx.NewConverter(md2docx.WithFont("Georgia"), md2docx.WithFontSize(12))
	if err != nil {
		log.Fatal(err)
	}

	result, err := conv.Convert(context.Background(), md2docx.Input{
		Markdown:   "# Hello\n\n**World**",
		SourceName: "hello.md",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.FileName)
	fmt.Println(len(result.DOCX) > 0)
	// Output:
	// hello.docx
	// true
}

func ExampleParse() {
	blocks := md2docx.Parse("## Plan\n- [x] draft\n1. review *carefully*", md2docx.FormattingOptions{})

	for _, b := range blocks {
		fmt.Println(b.Kind())
	}

	item := blocks[2].(md2docx.ListItem)
	for _, r := range item.Runs {
		fmt.Printf("%s %q\n", r.Style, r.Text)
	}
	// Output:
	// heading
	// task_item
	// list_item
	// plain "review "
	// italic "carefully"
}

func ExampleFormatForEmail() {
	text := md2docx.FormatForEmail("**Hi** _there_, see `main.go`", md2docx.FormattingOptions{
		StripBold:   true,
		StripItalic: true,
		StripCode:   true,
	})

	fmt.Println(text)
	// Output:
	// Hi there, see main.go
}

func ExampleFormatForEmail_table() {
	md := "| a | bb |\n|---|---|\n| ccc | dd |"

	fmt.Println(md2docx.FormatForEmail(md, md2docx.FormattingOptions{RenderTablesAsText: true}))
	// Output:
	// a   | bb
	// ----+---
	// ccc | dd
}
