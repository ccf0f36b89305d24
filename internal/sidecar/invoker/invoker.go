// Package invoker backs the sidecar Invoker contract: app ids are resolved
// to addresses through Consul's health catalog, then called over plain HTTP
// with JSON bodies.
package invoker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"reddog/internal/pkg/config"
	"reddog/internal/pkg/errs"

	"github.com/hashicorp/consul/api"
)

type Resolver interface {
	Resolve(appID string) (string, error)
}

type ConsulResolver struct {
	client *api.Client
}

func NewConsulResolver(cfg config.ConsulConfig) (*ConsulResolver, error) {
	consulCfg := api.DefaultConfig()
	consulCfg.Address = cfg.Address

	client, err := api.NewClient(consulCfg)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create consul client")
	}

	return &ConsulResolver{client: client}, nil
}

// Resolve returns the base URL of the first healthy instance of appID.
func (r *ConsulResolver) Resolve(appID string) (string, error) {
	services, _, err := r.client.Health().Service(appID, "", true, nil)
	if err != nil {
		return "", errs.Wrap(err, "failed to query consul for "+appID)
	}
	if len(services) == 0 {
		return "", errs.New("no healthy instances of " + appID)
	}

	service := services[0].Service
	address := service.Address
	if address == "" {
		address = "localhost"
	}

	return fmt.Sprintf("http://%s:%d", address, service.Port), nil
}

// RegisterService announces this service instance in consul so other
// services can invoke it by app id.
func (r *ConsulResolver) RegisterService(appID, address string, port int) error {
	registration := &api.AgentServiceRegistration{
		ID:      fmt.Sprintf("%s-%d", appID, port),
		Name:    appID,
		Address: address,
		Port:    port,
		Check: &api.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://%s:%d/health", address, port),
			Interval:                       "10s",
			Timeout:                        "5s",
			DeregisterCriticalServiceAfter: "30s",
		},
	}
	if err := r.client.Agent().ServiceRegister(registration); err != nil {
		return errs.Wrap(err, "failed to register service "+appID)
	}
	return nil
}

func (r *ConsulResolver) DeregisterService(appID string, port int) error {
	return r.client.Agent().ServiceDeregister(fmt.Sprintf("%s-%d", appID, port))
}

type HTTPInvoker struct {
	resolver   Resolver
	httpClient *http.Client
}

func New(resolver Resolver) *HTTPInvoker {
	return &HTTPInvoker{
		resolver: resolver,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (i *HTTPInvoker) Get(ctx context.Context, appID, method string, out any) error {
	resp, err := i.do(ctx, http.MethodGet, appID, method, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode response from "+appID)
	}
	return nil
}

func (i *HTTPInvoker) Post(ctx context.Context, appID, method string, body any) error {
	resp, err := i.do(ctx, http.MethodPost, appID, method, body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (i *HTTPInvoker) Delete(ctx context.Context, appID, method string) error {
	resp, err := i.do(ctx, http.MethodDelete, appID, method, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (i *HTTPInvoker) do(ctx context.Context, httpMethod, appID, method string, body any) (*http.Response, error) {
	baseURL, err := i.resolver.Resolve(appID)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrap(err, "failed to marshal request body")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, baseURL+"/"+method, reqBody)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "failed to invoke "+appID)
	}

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		resp.Body.Close()
		return nil, errs.New(fmt.Sprintf("%s %s returned %d: %s", appID, method, resp.StatusCode, string(respBody)))
	}

	return resp, nil
}
