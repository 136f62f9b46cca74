package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"go.uber.org/zap"
)

// Role/resource/action model. Roles are fixed at registration, so the policy
// is static: MANAGER inherits everything EMPLOYEE may do and adds leave
// decisions plus directory-wide reads.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

var policy = [][]string{
	{"EMPLOYEE", "leave", "create"},
	{"EMPLOYEE", "leave", "read"},
	{"EMPLOYEE", "attendance", "create"},
	{"EMPLOYEE", "attendance", "read"},
	{"EMPLOYEE", "profile", "read"},
	{"EMPLOYEE", "profile", "update"},
	{"EMPLOYEE", "user", "read"},
	{"MANAGER", "leave", "decide"},
}

var grouping = [][]string{
	{"MANAGER", "EMPLOYEE"},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policy {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	for _, g := range grouping {
		if _, err := enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer, logger: l}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	allowed, err := s.enforcer.Enforce(role, resource, action)
	if err != nil {
		s.logger.Error("enforce failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("enforce result",
		zap.String("role", role),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
