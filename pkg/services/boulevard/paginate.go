package boulevard

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

type wireConnection struct {
	Edges []struct {
		Node json.RawMessage `json:"node"`
	} `json:"edges"`
	PageInfo struct {
		HasNextPage bool   `json:"hasNextPage"`
		EndCursor   string `json:"endCursor"`
	} `json:"pageInfo"`
}

// fetchAllPages walks a cursor-paginated connection to completion and
// returns the raw nodes in arrival order. The walk is bounded by the
// configured page and node ceilings; hitting a ceiling logs a warning and
// returns what was collected so far rather than failing.
func (c *Client) fetchAllPages(ctx context.Context, query string, variables map[string]any, field string) ([]json.RawMessage, error) {
	logger := zerolog.Ctx(ctx)

	vars := make(map[string]any, len(variables)+2)
	for k, v := range variables {
		vars[k] = v
	}
	vars["first"] = c.opts.PageSize

	var nodes []json.RawMessage
	cursor := ""

	for page := 1; ; page++ {
		if page > c.opts.MaxPages {
			logger.Warn().
				Str("field", field).
				Int("max_pages", c.opts.MaxPages).
				Msg("page ceiling reached, returning partial result")
			return nodes, nil
		}

		if cursor != "" {
			vars["after"] = cursor
		} else {
			delete(vars, "after")
		}

		resp, err := c.executeWithRetry(ctx, query, vars)
		if err != nil {
			return nil, err
		}

		conn, err := extractConnection(resp.Data, field)
		if err != nil {
			// A malformed page halts the walk but keeps what we have.
			if len(nodes) > 0 {
				logger.Warn().
					Str("field", field).
					Err(err).
					Msg("malformed page, returning partial result")
				return nodes, nil
			}
			return nil, err
		}

		for _, edge := range conn.Edges {
			nodes = append(nodes, edge.Node)
			if len(nodes) >= c.opts.MaxNodes {
				logger.Warn().
					Str("field", field).
					Int("max_nodes", c.opts.MaxNodes).
					Msg("node ceiling reached, returning partial result")
				return nodes, nil
			}
		}

		if !conn.PageInfo.HasNextPage {
			return nodes, nil
		}
		if conn.PageInfo.EndCursor == "" {
			// The server claims more pages but gave us nothing to resume
			// from. Continuing would refetch page one forever.
			logger.Warn().
				Str("field", field).
				Msg("hasNextPage set without endCursor, returning partial result")
			return nodes, nil
		}
		cursor = conn.PageInfo.EndCursor
	}
}

// extractConnection pulls the named connection out of the data envelope.
// When the named field is absent but the envelope holds exactly one
// object, that object is taken instead, which tolerates servers that
// alias the root field.
func extractConnection(data json.RawMessage, field string) (*wireConnection, error) {
	if len(data) == 0 {
		return nil, &ProtocolError{Reason: "response has no data"}
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &ProtocolError{Reason: fmt.Sprintf("undecodable data envelope: %v", err)}
	}

	raw, ok := envelope[field]
	if !ok {
		if len(envelope) != 1 {
			return nil, &ProtocolError{Reason: fmt.Sprintf("field %q missing from response", field)}
		}
		for _, v := range envelope {
			raw = v
		}
	}

	var conn wireConnection
	if err := json.Unmarshal(raw, &conn); err != nil {
		return nil, &ProtocolError{Reason: fmt.Sprintf("field %q is not a connection: %v", field, err)}
	}
	return &conn, nil
}
