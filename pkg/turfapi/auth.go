package turfapi

import "context"

func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var res LoginResponse
	err := c.post(ctx, nil, "/api/auth/login", req, &res)

	return res, err
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (Message, error) {
	var res Message
	err := c.post(ctx, nil, "/api/auth/register", req, &res)

	return res, err
}

func (c *Client) SendOTP(ctx context.Context, req OTPSendRequest) (Message, error) {
	var res Message
	err := c.post(ctx, nil, "/api/auth/otp/send", req, &res)

	return res, err
}

func (c *Client) VerifyOTP(ctx context.Context, req OTPVerifyRequest) (LoginResponse, error) {
	var res LoginResponse
	err := c.post(ctx, nil, "/api/auth/otp/verify", req, &res)

	return res, err
}

// ExchangeOAuth trades a verified social identity for a turfics token.
func (c *Client) ExchangeOAuth(ctx context.Context, req OAuthExchangeRequest) (LoginResponse, error) {
	var res LoginResponse
	err := c.post(ctx, nil, "/api/auth/oauth/exchange", req, &res)

	return res, err
}
