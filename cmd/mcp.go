package cmd

import (
	"context"

	"github.com/jsphweid/chromatic/chord"
	"github.com/jsphweid/chromatic/constants"
	"github.com/jsphweid/chromatic/model"
	"github.com/jsphweid/chromatic/progression"
	"github.com/jsphweid/chromatic/render"
	"github.com/jsphweid/chromatic/scale"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serves the calculator as MCP tools over stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.ServeStdio(NewMCPServer())
	},
}

func NewMCPServer() *server.MCPServer {
	s := server.NewMCPServer("chromatic", constants.Version, server.WithToolCapabilities(false))

	s.AddTool(mcp.NewTool("chord",
		mcp.WithDescription("Spell a triad from shorthand such as C#m, Bbo, Fsus4"),
		mcp.WithString("token", mcp.Required(), mcp.Description("chord shorthand")),
	), handleChordTool)

	s.AddTool(mcp.NewTool("scale",
		mcp.WithDescription("Spell a major (C) or natural minor (Cm) scale and its triads"),
		mcp.WithString("token", mcp.Required(), mcp.Description("scale shorthand")),
	), handleScaleTool)

	s.AddTool(mcp.NewTool("progression",
		mcp.WithDescription("Spell a roman numeral progression such as i-iv-v in a scale"),
		mcp.WithString("chords", mcp.Required(), mcp.Description("hyphen separated roman numerals")),
		mcp.WithString("scale", mcp.Required(), mcp.Description("scale shorthand")),
	), handleProgressionTool)

	s.AddTool(mcp.NewTool("identify",
		mcp.WithDescription("Name the triads made of exactly the given notes"),
		mcp.WithString("notes", mcp.Required(), mcp.Description("comma separated note names, e.g. C,E,G")),
	), handleIdentifyTool)

	return s
}

func handleChordTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	token, err := req.RequireString("token")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	t, err := chord.ParseStrict(token)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(render.ChordText(t)), nil
}

func handleScaleTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	token, err := req.RequireString("token")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s, err := scale.ParseStrict(token)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(render.ScaleText(s)), nil
}

func handleProgressionTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chords, err := req.RequireString("chords")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	scaleToken, err := req.RequireString("scale")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s, err := scale.ParseStrict(scaleToken)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	p, err := progression.ParseStrict(s, chords)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(render.ProgressionText(p)), nil
}

func handleIdentifyTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("notes")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	tokens := splitList(raw)
	if len(tokens) == 0 {
		return mcp.NewToolResultError((&model.ParseError{Kind: model.EmptyInput}).Error()), nil
	}
	notes, err := parseNotes(tokens, true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(render.IdentificationText(notes, chord.Identify(notes))), nil
}
