package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/talentmatch-ai/talentmatch/backend/pkg/graph"
)

// Client implements graph.Executor against a Neo4j instance over Bolt.
// The underlying driver maintains a connection pool and is safe for
// concurrent read sessions.
//
// A Client should be created using NewClient.
type Client struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewClientParams defines the connection parameters for a Client.
//
// URI is a bolt:// or neo4j:// address. Database may be empty to use the
// server default.
type NewClientParams struct {
	URI      string
	Username string
	Password string
	Database string
}

// NewClient creates a Client and verifies connectivity before returning.
func NewClient(ctx context.Context, params NewClientParams) (*Client, error) {
	driver, err := neo4j.NewDriverWithContext(
		params.URI,
		neo4j.BasicAuth(params.Username, params.Password, ""),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("failed to reach neo4j at %s: %w", params.URI, err)
	}

	return &Client{
		driver:   driver,
		database: params.Database,
	}, nil
}

// Execute runs a single read query and materializes all records. Rows
// are keyed by the query's return aliases.
func (c *Client) Execute(
	ctx context.Context,
	query string,
	params map[string]any,
) ([]graph.Row, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: c.database,
	})
	defer session.Close(ctx)

	records, err := neo4j.ExecuteRead(ctx, session,
		func(tx neo4j.ManagedTransaction) ([]graph.Row, error) {
			result, err := tx.Run(ctx, query, params)
			if err != nil {
				return nil, err
			}

			rows := []graph.Row{}
			for result.Next(ctx) {
				rows = append(rows, graph.Row(result.Record().AsMap()))
			}
			return rows, result.Err()
		})
	if err != nil {
		return nil, fmt.Errorf("graph query failed: %w", err)
	}

	return records, nil
}

// Close releases the driver's connection pool.
func (c *Client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}
