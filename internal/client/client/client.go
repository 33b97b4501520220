// Package client wraps the gRPC auth client behind a small API used by the
// interactive CLI.
package client

import (
	"context"
	"fmt"

	pb "github.com/avoronov/authkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// AuthResult is the client-side view of a successful auth call.
type AuthResult struct {
	UserID string
	Name   string
	Email  string
	Token  string
}

type GRPCClient struct {
	conn   *grpc.ClientConn
	client pb.AuthServiceClient
}

func NewGRPCClient(endpoint string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc connection error: %w", err)
	}
	return &GRPCClient{conn: conn, client: pb.NewAuthServiceClient(conn)}, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	resp, err := c.client.RegisterUser(ctx, &pb.RegisterUserRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return toAuthResult(resp), nil
}

func (c *GRPCClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	resp, err := c.client.LoginUser(ctx, &pb.LoginUserRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return toAuthResult(resp), nil
}

func (c *GRPCClient) Verify(ctx context.Context, token string) (*AuthResult, error) {
	resp, err := c.client.VerifyToken(ctx, &pb.VerifyTokenRequest{Token: token})
	if err != nil {
		return nil, err
	}
	return toAuthResult(resp), nil
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	_, err := c.client.Ping(ctx, &pb.PingRequest{})
	return err
}

func toAuthResult(resp *pb.AuthResponse) *AuthResult {
	r := &AuthResult{Token: resp.Token}
	if resp.User != nil {
		r.UserID = resp.User.Id
		r.Name = resp.User.Name
		r.Email = resp.User.Email
	}
	return r
}
