package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-doc-keeper/internal/adapter"
	"github.com/MKhiriev/go-doc-keeper/models"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("wrong number of arguments")
)

const usage = `usage: client [flags] <command> [args]

commands:
  version                                   print client and server versions
  register <email> <password> <username> <firstname> <lastname>
  login <email> <password>                  print a session token
  logout
  list [page] [limit]                       list visible documents
  get <id>
  create <title> <public|private> <content>
  update <id> <field=value>...              fields: title, content, access
  delete <id>
  search <query>

commands other than version, register and login read the token from ` + tokenEnv

type commands struct {
	api       adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	out       io.Writer
}

func newCommands(api adapter.ServerAdapter, buildInfo models.AppBuildInfo, out io.Writer) *commands {
	return &commands{api: api, buildInfo: buildInfo, out: out}
}

func (c *commands) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		_, err := fmt.Fprintln(c.out, usage)
		return err
	}

	name, args := args[0], args[1:]
	switch name {
	case "version":
		return c.version(ctx)
	case "register":
		return c.register(ctx, args)
	case "login":
		return c.login(ctx, args)
	case "logout":
		return c.api.Logout(ctx)
	case "list":
		return c.list(ctx, args)
	case "get":
		return c.withID(args, func(id int64) error {
			doc, err := c.api.GetDocument(ctx, id)
			if err != nil {
				return err
			}
			return c.print(doc)
		})
	case "create":
		return c.create(ctx, args)
	case "update":
		return c.update(ctx, args)
	case "delete":
		return c.withID(args, func(id int64) error {
			return c.api.DeleteDocument(ctx, id)
		})
	case "search":
		docs, err := c.api.SearchDocuments(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		return c.print(docs)
	default:
		return fmt.Errorf("%w %q\n%s", errUnknownCommand, name, usage)
	}
}

func (c *commands) version(ctx context.Context) error {
	if _, err := fmt.Fprint(c.out, c.buildInfo); err != nil {
		return err
	}

	v, err := c.api.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.out, "Server version: %s\n", v)
	return err
}

func (c *commands) register(ctx context.Context, args []string) error {
	if len(args) != 5 {
		return fmt.Errorf("%w: register <email> <password> <username> <firstname> <lastname>", errUsage)
	}

	out, err := c.api.Register(ctx, models.User{
		Email:     args[0],
		Password:  args[1],
		Username:  args[2],
		FirstName: args[3],
		LastName:  args[4],
	})
	if err != nil {
		return err
	}
	return c.print(out)
}

func (c *commands) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: login <email> <password>", errUsage)
	}

	out, err := c.api.Login(ctx, models.Credentials{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	return c.print(out)
}

func (c *commands) list(ctx context.Context, args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("%w: list [page] [limit]", errUsage)
	}

	var offset, limit string
	if len(args) > 0 {
		offset = args[0]
	}
	if len(args) > 1 {
		limit = args[1]
	}

	docs, pagination, err := c.api.ListDocuments(ctx, models.NewPageRequest(offset, limit))
	if err != nil {
		return err
	}
	return c.print(models.DocumentsResponse{Documents: docs, Pagination: &pagination})
}

func (c *commands) create(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w: create <title> <public|private> <content>", errUsage)
	}

	doc, err := c.api.CreateDocument(ctx, models.Document{
		Title:   args[0],
		Access:  models.Access(args[1]),
		Content: strings.Join(args[2:], " "),
	})
	if err != nil {
		return err
	}
	return c.print(doc)
}

func (c *commands) update(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: update <id> <field=value>...", errUsage)
	}

	var update models.DocumentUpdate
	for _, arg := range args[1:] {
		field, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("%w: expected field=value, got %q", errUsage, arg)
		}
		switch field {
		case "title":
			update.Title = &value
		case "content":
			update.Content = &value
		case "access":
			access := models.Access(value)
			update.Access = &access
		default:
			return fmt.Errorf("%w: unknown field %q", errUsage, field)
		}
	}

	return c.withID(args[:1], func(id int64) error {
		doc, err := c.api.UpdateDocument(ctx, id, update)
		if err != nil {
			return err
		}
		return c.print(doc)
	})
}

func (c *commands) withID(args []string, fn func(id int64) error) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected a document id", errUsage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return fmt.Errorf("%w: invalid document id %q", errUsage, args[0])
	}
	return fn(id)
}

func (c *commands) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
