package main

// @title           AngelesWeb API
// @version         1.0
// @description     API para gestão de salão: clientes, serviços, vendas, comissões e agendamentos

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
