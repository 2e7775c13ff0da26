package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerAddTaskTool(srv, svc)
	registerToggleTaskTool(srv, svc)
	registerRemoveTaskTool(srv, svc)
	registerEditTaskTool(srv, svc)
	registerListTasksTool(srv, svc)
}

func registerAddTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_task",
		mcp.WithDescription("Add an open task to the end of the list."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("What needs doing. Must not be blank."),
		),
		mcp.WithString("due",
			mcp.Description("Optional due date as YYYY-MM-DD."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := svc.AddTask(ctx, text, request.GetString("due", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerToggleTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_task",
		mcp.WithDescription("Flip a task between open and completed."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task id or a unique prefix of it."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := svc.ToggleTask(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerRemoveTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_task",
		mcp.WithDescription("Delete a task."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task id or a unique prefix of it."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res, err := svc.RemoveTask(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerEditTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"edit_task",
		mcp.WithDescription("Change the text or due date of a task."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task id or a unique prefix of it."),
		),
		mcp.WithString("text",
			mcp.Description("New text. Must not be blank."),
		),
		mcp.WithString("due",
			mcp.Description("New due date as YYYY-MM-DD. An empty string clears it."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID   string  `json:"id"`
			Text *string `json:"text"`
			Due  *string `json:"due"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.ID == "" {
			return mcp.NewToolResultError("id is required"), nil
		}

		opts := EditOptions{ID: args.ID, Text: args.Text, DueDate: args.Due}
		if args.Due != nil && *args.Due == "" {
			opts.DueDate, opts.ClearDue = nil, true
		}
		res, err := svc.EditTask(ctx, opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerListTasksTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List tasks in insertion order."),
		mcp.WithString("filter",
			mcp.Description("Which tasks to return."),
			mcp.Enum("all", "active", "completed"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tasks, err := svc.ListTasks(ctx, request.GetString("filter", "all"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"tasks": tasks,
			"count": len(tasks),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
