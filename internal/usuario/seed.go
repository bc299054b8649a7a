package usuario

import (
	"encoding/json"
	"log"
	"os"

	"github.com/racondash/api-comissoes/internal/auth"
	"github.com/racondash/api-comissoes/internal/consultor"
	"github.com/racondash/api-comissoes/internal/utils"

	"gorm.io/gorm"
)

// CredencialStore resolve a senha inicial de cada consultor. Substitui a
// antiga tabela fixa de senhas no código por configuração explícita: o env
// CONSULTANT_PASSWORDS_JSON sobrescreve, o resto cai na senha derivada.
type CredencialStore struct {
	admin         string
	adminSenha    string
	senhaPadrao   string
	sobrescritas  map[string]string
	resetarSenhas bool
}

func getenv(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}

// NovaCredencialStoreDoAmbiente monta o store a partir das variáveis de
// ambiente.
func NovaCredencialStoreDoAmbiente() *CredencialStore {
	s := &CredencialStore{
		admin:         getenv("ADMIN_USER", "admin"),
		adminSenha:    getenv("ADMIN_PASSWORD", "admin"),
		senhaPadrao:   getenv("CONSULTANT_DEFAULT_PASSWORD", "consultor"),
		sobrescritas:  map[string]string{},
		resetarSenhas: os.Getenv("RESET_CONSULTANT_PASSWORDS") == "1",
	}
	if raw := os.Getenv("CONSULTANT_PASSWORDS_JSON"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &s.sobrescritas); err != nil {
			log.Printf("CONSULTANT_PASSWORDS_JSON inválido, ignorando: %v", err)
			s.sobrescritas = map[string]string{}
		}
	}
	return s
}

// SenhaConsultor resolve a senha inicial do consultor: sobrescrita do env ou
// senha derivada estável.
func (s *CredencialStore) SenhaConsultor(username string, consultorID uint) string {
	if senha, ok := s.sobrescritas[username]; ok {
		return senha
	}
	return utils.GerarSenhaConsultor(username, consultorID)
}

// ConsultoresPadrao é a carteira inicial criada em bancos vazios.
var ConsultoresPadrao = []string{"Graziele", "Gustavo", "Pedro", "Poli", "Marcelo", "Victor"}

// Seed garante admin, carteira padrão de consultores e um login por consultor
// ativo. Idempotente: roda a cada boot sem duplicar nem quebrar acessos.
func Seed(db *gorm.DB, store *CredencialStore) error {
	repo := NewRepository()
	consultores := consultor.NewRepository()

	if _, err := repo.BuscarPorUsername(db, store.admin); err != nil {
		hash, err := utils.HashSenha(store.adminSenha)
		if err != nil {
			return err
		}
		if err := repo.Criar(db, &Usuario{Username: store.admin, SenhaHash: hash, Role: auth.RoleAdmin}); err != nil {
			return err
		}
		log.Printf("admin criado: %s", store.admin)
	}

	for _, nome := range ConsultoresPadrao {
		if _, err := consultores.BuscarPorNome(db, nome); err != nil {
			if err := consultores.Salvar(db, &consultor.Consultor{Nome: nome, Ativo: true}); err != nil {
				return err
			}
		}
	}

	ativos, err := consultores.ListarAtivos(db)
	if err != nil {
		return err
	}
	for _, c := range ativos {
		username := utils.Slugify(c.Nome)
		u, err := repo.BuscarPorUsername(db, username)
		if err != nil {
			hash, err := utils.HashSenha(store.SenhaConsultor(username, c.ID))
			if err != nil {
				return err
			}
			cid := c.ID
			if err := repo.Criar(db, &Usuario{
				Username:    username,
				SenhaHash:   hash,
				Role:        auth.RoleConsultor,
				ConsultorID: &cid,
			}); err != nil {
				return err
			}
			log.Printf("login de consultor criado: %s (%s)", c.Nome, username)
			continue
		}

		// Login já existia: só troca a senha se ainda for a padrão ou se o
		// reset foi pedido via env, para não derrubar o acesso de ninguém.
		aindaPadrao := utils.VerificarSenha(u.SenhaHash, store.senhaPadrao)
		if store.resetarSenhas || aindaPadrao {
			hash, err := utils.HashSenha(store.SenhaConsultor(username, c.ID))
			if err != nil {
				return err
			}
			u.SenhaHash = hash
			if err := repo.Salvar(db, u); err != nil {
				return err
			}
			log.Printf("senha de consultor atualizada: %s (%s)", c.Nome, username)
		}
	}
	return nil
}
