// Package client is a Go consumer of the mindwrite API, standing in for the
// single-page frontend. It keeps the session in memory: populated on login,
// cleared on logout or as soon as any call answers 401.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mindwrite-api/models"
)

// Session is the logged-in user summary plus the bearer token.
type Session struct {
	ID        uint
	Username  string
	Role      models.UserRole
	FirstName string
	LastName  string
	Token     string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Session returns the current session, or nil when logged out.
func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) Logout() {
	c.session = nil
}

// APIError carries the status code and the server's error message verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.session != nil {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// The token is no longer good; forget the session.
		c.session = nil
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) Register(req models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.do(http.MethodPost, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Login(username, password string) (*Session, error) {
	var resp models.AuthResponse
	err := c.do(http.MethodPost, "/auth/login", models.LoginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	c.session = &Session{
		ID:        resp.ID,
		Username:  resp.Username,
		Role:      resp.Role,
		FirstName: resp.FirstName,
		LastName:  resp.LastName,
		Token:     resp.AccessToken,
	}
	return c.session, nil
}

func (c *Client) CheckUsername(username string) (bool, error) {
	var resp models.CheckUsernameResponse
	path := "/auth/check-username?username=" + url.QueryEscape(username)
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return false, err
	}
	return resp.Available, nil
}

func (c *Client) PublicProfile(username string) (*models.PublicProfile, error) {
	var profile models.PublicProfile
	if err := c.do(http.MethodGet, "/auth/users/"+url.PathEscape(username), nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) Profile() (*models.PublicProfile, error) {
	var profile models.PublicProfile
	if err := c.do(http.MethodGet, "/auth/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(req models.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := c.do(http.MethodPut, "/auth/me", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListUsers() ([]models.UserListItem, error) {
	var users []models.UserListItem
	if err := c.do(http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) UpdateUserRole(id uint, role models.UserRole) error {
	return c.do(http.MethodPut, fmt.Sprintf("/admin/users/%d/role", id),
		models.UpdateRoleRequest{Role: role}, nil)
}

func (c *Client) DeactivateUser(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil, nil)
}

func (c *Client) ListPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(http.MethodGet, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// MyPosts is the profile view's post list: the caller's own posts, drafts
// included because they belong to the session owner.
func (c *Client) MyPosts() ([]models.Post, error) {
	if c.session == nil {
		return nil, &APIError{Status: http.StatusUnauthorized, Message: "not logged in"}
	}

	posts, err := c.ListPosts()
	if err != nil {
		return nil, err
	}

	mine := make([]models.Post, 0)
	for _, p := range posts {
		if p.AuthorID == c.session.ID {
			mine = append(mine, p)
		}
	}
	return mine, nil
}

func (c *Client) GetPost(id uint) (*models.Post, error) {
	var post models.Post
	if err := c.do(http.MethodGet, fmt.Sprintf("/posts/%d", id), nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) CreatePost(req models.CreatePostRequest) (*models.Post, error) {
	var post models.Post
	if err := c.do(http.MethodPost, "/posts", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) UpdatePost(id uint, req models.UpdatePostRequest) (*models.Post, error) {
	var post models.Post
	if err := c.do(http.MethodPut, fmt.Sprintf("/posts/%d", id), req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) DeletePost(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil, nil)
}

func (c *Client) CreateComment(req models.CreateCommentRequest) (*models.Comment, error) {
	var comment models.Comment
	if err := c.do(http.MethodPost, "/comments", req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) ListComments(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.do(http.MethodGet, fmt.Sprintf("/comments/post/%d", postID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) ListTags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := c.do(http.MethodGet, "/tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *Client) ListTagsWithCount() ([]models.TagWithCount, error) {
	var counts []models.TagWithCount
	if err := c.do(http.MethodGet, "/tags/with-count", nil, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (c *Client) CreateTag(name string) (*models.Tag, error) {
	var tag models.Tag
	if err := c.do(http.MethodPost, "/tags", models.CreateTagRequest{Name: name}, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}
