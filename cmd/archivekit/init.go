package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

// mcpConfig represents the structure of a .mcp.json file.
type mcpConfig struct {
	MCPServers map[string]json.RawMessage `json:"mcpServers"`
}

// archivekitMCPEntry is the MCP server configuration for the archivekit binary.
var archivekitMCPEntry = json.RawMessage(`{
  "type": "stdio",
  "command": "archivekit",
  "args": ["--serve-mcp"]
}`)

// starterConfig is written by `archivekit init` as a commented template.
const starterConfig = `# archivekit project configuration
destDir: merged_out
policy: deep
# workers: 4
# verbose: false
# sampleCount: 3
# fixedDir: fixed
# loadableDir: loadable
`

// runInit writes a starter archivekit.yml and registers the MCP server
// entry in .mcp.json.
func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	force := fs.Bool("force", false, "overwrite existing files")
	if err := fs.Parse(args); err != nil {
		return err
	}

	root := "."
	if fs.NArg() > 0 {
		root = fs.Arg(0)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving project root: %w", err)
	}

	cfgPath := filepath.Join(abs, "archivekit.yml")
	if _, err := os.Stat(cfgPath); err == nil && !*force {
		fmt.Printf("  %s already exists, leaving it alone (-force overwrites)\n", displayPath(abs, cfgPath))
	} else {
		if err := os.WriteFile(cfgPath, []byte(starterConfig), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", cfgPath, err)
		}
		fmt.Printf("  wrote %s\n", displayPath(abs, cfgPath))
	}

	if err := registerMCPServer(filepath.Join(abs, ".mcp.json"), *force); err != nil {
		return err
	}

	fmt.Println("\nReady. Edit archivekit.yml to point at your archive directories.")
	return nil
}

// registerMCPServer adds the archivekit entry to .mcp.json, creating
// the file if needed and preserving entries for other servers.
func registerMCPServer(mcpPath string, force bool) error {
	var cfg mcpConfig

	data, err := os.ReadFile(mcpPath)
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parsing %s: %w", mcpPath, err)
		}
	}

	if cfg.MCPServers == nil {
		cfg.MCPServers = make(map[string]json.RawMessage)
	}

	if _, exists := cfg.MCPServers["archivekit"]; exists && !force {
		fmt.Println("  .mcp.json already lists archivekit, leaving it alone (-force replaces)")
		return nil
	}
	cfg.MCPServers["archivekit"] = archivekitMCPEntry

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling .mcp.json: %w", err)
	}
	if err := os.WriteFile(mcpPath, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", mcpPath, err)
	}

	if data == nil {
		fmt.Println("  wrote .mcp.json registering the archivekit MCP server")
	} else {
		fmt.Println("  registered the archivekit MCP server in .mcp.json")
	}
	return nil
}

// displayPath shortens an absolute path to ./relative for output.
func displayPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return "./" + rel
}
