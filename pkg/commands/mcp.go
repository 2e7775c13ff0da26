package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/runner/mcp"
)

type mcpOptions struct {
	transport string
	listen    string
	path      string
	certFile  string
	keyFile   string
}

func (o *mcpOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.transport, "transport", string(mcp.TransportStdio), "stdio or http")
	f.StringVar(&o.listen, "listen", mcp.DefaultAddr, "host:port to serve http on, port 0 picks one")
	f.StringVar(&o.path, "endpoint", mcp.DefaultPath, "http path of the MCP endpoint")
	f.StringVar(&o.certFile, "tls-cert", "", "certificate file, serves https with --tls-key")
	f.StringVar(&o.keyFile, "tls-key", "", "private key file for --tls-cert")
}

func (o *mcpOptions) runner() (mcp.Runner, error) {
	r := mcp.Runner{
		Version:  version,
		Addr:     strings.TrimSpace(o.listen),
		Path:     mcp.CleanPath(o.path),
		CertFile: strings.TrimSpace(o.certFile),
		KeyFile:  strings.TrimSpace(o.keyFile),
	}
	switch t := mcp.Transport(strings.ToLower(strings.TrimSpace(o.transport))); t {
	case "", mcp.TransportStdio:
		r.Transport = mcp.TransportStdio
	case mcp.TransportHTTP:
		r.Transport = mcp.TransportHTTP
	default:
		return r, fmt.Errorf("unknown transport %q, expected stdio or http", o.transport)
	}
	return r, nil
}

func addMCP(topLevel *cobra.Command) {
	o := &mcpOptions{}
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the task list to MCP clients.",
		Long: `Run a Model Context Protocol server with the tools add_task, toggle_task,
remove_task, edit_task and list_tasks. Speaks stdio unless --transport http.`,
		Example: `
todo mcp
todo mcp --transport http --listen :9090
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := o.runner()
			if err != nil {
				return err
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			r.Store = s.Tasks
			r.Ready = func(url string) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "serving MCP at %s\n", url)
			}
			return r.Do(cmd.Context())
		},
	}
	o.addFlags(cmd)
	topLevel.AddCommand(cmd)
}
