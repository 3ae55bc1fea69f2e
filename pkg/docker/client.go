package docker

import (
	"net/http"
	"path/filepath"

	"github.com/docker/docker/client"
	"github.com/docker/go-connections/sockets"
	"github.com/docker/go-connections/tlsconfig"

	"github.com/engity-com/killport/pkg/configuration"
)

func newApiClient(conf *configuration.Docker) (_ client.APIClient, err error) {
	fail := func(err error) (client.APIClient, error) {
		return nil, err
	}

	hostURL, err := client.ParseHostURL(client.DefaultDockerHost)
	if err != nil {
		return fail(err)
	}

	httpTransport := http.Transport{}
	if err := sockets.ConfigureTransport(&httpTransport, hostURL.Scheme, hostURL.Host); err != nil {
		return fail(err)
	}
	httpClient := http.Client{
		Transport:     &httpTransport,
		CheckRedirect: client.CheckRedirect,
	}

	clientOpts := []client.Opt{client.WithHTTPClient(&httpClient)}
	if v := conf.Host; v != "" {
		clientOpts = append(clientOpts, client.WithHost(v))
	}
	if v := conf.ApiVersion; v != "" {
		clientOpts = append(clientOpts, client.WithVersion(v))
	} else {
		clientOpts = append(clientOpts, client.WithAPIVersionNegotiation())
	}
	if v := conf.CertPath; v != "" {
		if httpTransport.TLSClientConfig, err = tlsconfig.Client(tlsconfig.Options{
			CAFile:             filepath.Join(v, "ca.pem"),
			CertFile:           filepath.Join(v, "cert.pem"),
			KeyFile:            filepath.Join(v, "key.pem"),
			InsecureSkipVerify: !conf.TlsVerify,
		}); err != nil {
			return fail(err)
		}
	}

	apiClient, err := client.NewClientWithOpts(clientOpts...)
	if err != nil {
		return fail(err)
	}

	return apiClient, nil
}
