package client

import "context"

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByClientID(ctx context.Context, clientID string) (*Client, error)
	GetByClientIDForUpdate(ctx context.Context, clientID string) (*Client, error)
	List(ctx context.Context, status Status) ([]Client, error)
	Save(ctx context.Context, c *Client) error
	Delete(ctx context.Context, clientID string) (int64, error)
}
