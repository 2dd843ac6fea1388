// Copyright 2023 Northern.tech AS
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	    http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.

package azblob

import (
	"context"
	"net/url"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"github.com/grenade/taskcluster-queue/model"
)

// Container is the Azure Blob Storage adapter. Implements
// storage.BlobContainer.
type Container struct {
	client *azblob.ContainerClient
	opts   Options
}

func New(ctx context.Context, opts Options) (*Container, error) {
	if err := opts.Validate(); err != nil {
		return nil, OpError{Message: "invalid configuration", Reason: err}
	}
	cc, err := azblob.NewContainerClientFromConnectionString(
		opts.ConnectionString, opts.Container, &azblob.ClientOptions{},
	)
	if err != nil {
		return nil, OpError{Message: "failed to create container client", Reason: err}
	}
	c := &Container{client: cc, opts: opts}
	if _, err := cc.GetProperties(ctx, &azblob.ContainerGetPropertiesOptions{}); err != nil {
		return nil, OpError{Op: "HealthCheck", Reason: err}
	}
	return c, nil
}

func (c *Container) Name() string {
	return c.opts.Container
}

func buildSignedURL(blobURL string, sas azblob.SASQueryParameters) (string, error) {
	baseURL, err := url.Parse(blobURL)
	if err != nil {
		return "", err
	}
	qSAS, err := url.ParseQuery(sas.Encode())
	if err != nil {
		return "", err
	}
	q := baseURL.Query()
	for key, values := range qSAS {
		for _, value := range values {
			q.Add(key, value)
		}
	}
	baseURL.RawQuery = q.Encode()
	return baseURL.String(), nil
}

// GenerateWriteSAS signs a blob-create-and-write request, valid for expiry.
func (c *Container) GenerateWriteSAS(
	ctx context.Context, path string, expiry time.Duration,
) (*model.Link, error) {
	bc, err := c.client.NewBlockBlobClient(path)
	if err != nil {
		return nil, OpError{
			Op:      OpGenerateWriteSAS,
			Message: "failed to initialize blob client",
			Reason:  err,
		}
	}
	now := time.Now().UTC()
	exp := now.Add(expiry)
	qParams, err := bc.GetSASToken(azblob.BlobSASPermissions{
		Create: true,
		Write:  true,
	}, now, exp)
	if err != nil {
		return nil, OpError{
			Op:      OpGenerateWriteSAS,
			Message: "failed to generate SAS token",
			Reason:  err,
		}
	}
	uri, err := buildSignedURL(bc.URL(), qParams)
	if err != nil {
		return nil, OpError{
			Op:      OpGenerateWriteSAS,
			Message: "failed to create pre-signed URL",
			Reason:  err,
		}
	}
	return model.NewLink(uri, exp), nil
}

// CreateSignedGetURL signs a blob read request, valid for expiry.
func (c *Container) CreateSignedGetURL(
	ctx context.Context, path string, expiry time.Duration,
) (*model.Link, error) {
	bc, err := c.client.NewBlockBlobClient(path)
	if err != nil {
		return nil, OpError{
			Op:      OpGetRequest,
			Message: "failed to initialize blob client",
			Reason:  err,
		}
	}
	now := time.Now().UTC()
	exp := now.Add(expiry)
	qParams, err := bc.GetSASToken(azblob.BlobSASPermissions{Read: true}, now, exp)
	if err != nil {
		return nil, OpError{
			Op:      OpGetRequest,
			Message: "failed to generate SAS token",
			Reason:  err,
		}
	}
	uri, err := buildSignedURL(bc.URL(), qParams)
	if err != nil {
		return nil, OpError{
			Op:      OpGetRequest,
			Message: "failed to create pre-signed URL",
			Reason:  err,
		}
	}
	return model.NewLink(uri, exp), nil
}
