package comprovante

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Storage envia comprovantes para um bucket com leitura pública e devolve
// a URL resultante.
type Storage interface {
	Enviar(ctx context.Context, nomeArquivo, contentType string, dados []byte) (string, error)
}

// S3Storage implementa Storage sobre qualquer serviço compatível com S3.
type S3Storage struct {
	cliente *s3.Client
	bucket  string
	baseURL string
}

type S3Config struct {
	Endpoint  string
	Regiao    string
	Bucket    string
	AccessKey string
	SecretKey string
	PathStyle bool
}

func NewS3Storage(cfg S3Config) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("bucket de comprovantes não configurado")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("credenciais do storage não configuradas")
	}

	regiao := cfg.Regiao
	if regiao == "" {
		regiao = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(regiao),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar configuração AWS: %w", err)
	}

	cliente := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	})

	baseURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, regiao)
	if cfg.Endpoint != "" {
		baseURL = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}

	return &S3Storage{
		cliente: cliente,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
	}, nil
}

// NewS3StorageDoAmbiente monta o storage a partir das variáveis de ambiente.
func NewS3StorageDoAmbiente() (*S3Storage, error) {
	return NewS3Storage(S3Config{
		Endpoint:  os.Getenv("RECEIPTS_ENDPOINT"),
		Regiao:    os.Getenv("RECEIPTS_REGION"),
		Bucket:    os.Getenv("RECEIPTS_BUCKET"),
		AccessKey: os.Getenv("RECEIPTS_ACCESS_KEY"),
		SecretKey: os.Getenv("RECEIPTS_SECRET_KEY"),
		PathStyle: os.Getenv("RECEIPTS_PATH_STYLE") == "true",
	})
}

// NomeObjeto gera um nome resistente a colisão, prefixado com o instante
// do envio, preservando o nome original sem espaços nem diretórios.
func NomeObjeto(nomeArquivo string) string {
	base := path.Base(strings.ReplaceAll(nomeArquivo, "\\", "/"))
	base = strings.ReplaceAll(base, " ", "-")
	return fmt.Sprintf("comprovante-%d-%s", time.Now().UnixMilli(), base)
}

// Enviar grava o arquivo no bucket e devolve a URL pública do objeto.
func (s *S3Storage) Enviar(ctx context.Context, nomeArquivo, contentType string, dados []byte) (string, error) {
	if len(dados) == 0 {
		return "", ErrArquivoVazio
	}

	chave := NomeObjeto(nomeArquivo)
	_, err := s.cliente.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(chave),
		Body:        bytes.NewReader(dados),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}

	return s.baseURL + "/" + chave, nil
}
