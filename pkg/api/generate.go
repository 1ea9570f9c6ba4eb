package api

//go:generate go tool oapi-codegen -config cfg.yaml ../../swagger/swagger-ui/openapi.yaml
