package comprovante

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	chamadas int
	url      string
	err      error
}

func (f *fakeStorage) Enviar(ctx context.Context, nomeArquivo, contentType string, dados []byte) (string, error) {
	f.chamadas++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func requisicaoMultipart(t *testing.T, nomeArquivo string, conteudo []byte) *http.Request {
	t.Helper()

	var corpo bytes.Buffer
	escritor := multipart.NewWriter(&corpo)
	parte, err := escritor.CreateFormFile("file", nomeArquivo)
	require.NoError(t, err)
	_, err = parte.Write(conteudo)
	require.NoError(t, err)
	require.NoError(t, escritor.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload-receipt", &corpo)
	req.Header.Set("Content-Type", escritor.FormDataContentType())
	return req
}

func TestEnviarComprovanteComSucesso(t *testing.T) {
	fake := &fakeStorage{url: "https://bucket.example.com/comprovante-1-recibo.png"}
	h := NewHandler(fake)

	rec := httptest.NewRecorder()
	h.Enviar(rec, requisicaoMultipart(t, "recibo.png", []byte("conteudo")))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fake.url, resp["url"])
	assert.Equal(t, 1, fake.chamadas)
}

func TestEnviarComprovanteVazioNaoChegaAoStorage(t *testing.T) {
	fake := &fakeStorage{url: "https://bucket.example.com/x"}
	h := NewHandler(fake)

	rec := httptest.NewRecorder()
	h.Enviar(rec, requisicaoMultipart(t, "recibo.png", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, fake.chamadas)
}

func TestEnviarSemArquivo(t *testing.T) {
	fake := &fakeStorage{}
	h := NewHandler(fake)

	req := httptest.NewRequest(http.MethodPost, "/upload-receipt", strings.NewReader("nada"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	rec := httptest.NewRecorder()
	h.Enviar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, fake.chamadas)
}

func TestEnviarComprovanteFalhaDoStorage(t *testing.T) {
	fake := &fakeStorage{err: ErrUpload}
	h := NewHandler(fake)

	rec := httptest.NewRecorder()
	h.Enviar(rec, requisicaoMultipart(t, "recibo.png", []byte("conteudo")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "falha ao enviar comprovante")
}

func TestNomeObjeto(t *testing.T) {
	nome := NomeObjeto("recibo de janeiro.png")

	assert.True(t, strings.HasPrefix(nome, "comprovante-"))
	assert.True(t, strings.HasSuffix(nome, "recibo-de-janeiro.png"))
	assert.NotContains(t, nome, " ")
}

func TestNomeObjetoDescartaDiretorios(t *testing.T) {
	nome := NomeObjeto("../../etc/recibo.png")

	assert.NotContains(t, nome, "/")
	assert.True(t, strings.HasSuffix(nome, "recibo.png"))
}

func TestEnviarDireto_ArquivoVazio(t *testing.T) {
	s := &S3Storage{bucket: "b", baseURL: "https://b.s3.us-east-1.amazonaws.com"}

	_, err := s.Enviar(context.Background(), "recibo.png", "image/png", nil)
	assert.ErrorIs(t, err, ErrArquivoVazio)
}
