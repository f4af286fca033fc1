package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/usersvc/internal/proto"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
	"github.com/dmitrijs2005/usersvc/internal/server/validate"
)

// HealthMessage is the reply of UsersService.Health.
const HealthMessage = "users service is up and running!"

type authHandler struct {
	pb.UnimplementedAuthServiceServer
	auth Authenticator
}

func (h *authHandler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	username, err := validate.Login(req.Username, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}

	res, err := h.auth.Login(ctx, username, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.AuthResponse{User: toPBProfile(res.User), Token: res.Token}, nil
}

func (h *authHandler) Verify(ctx context.Context, req *pb.VerifyRequest) (*pb.AuthResponse, error) {
	res, err := h.auth.VerifyToken(ctx, req.Token)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.AuthResponse{User: toPBProfile(res.User), Token: res.Token}, nil
}

type usersHandler struct {
	pb.UnimplementedUsersServiceServer
	users            UserManager
	defaultPageLimit int
}

func (h *usersHandler) Health(ctx context.Context, req *pb.HealthRequest) (*pb.HealthResponse, error) {
	return &pb.HealthResponse{Status: HealthMessage}, nil
}

func (h *usersHandler) Create(ctx context.Context, req *pb.CreateUserRequest) (*pb.ProvisionedUser, error) {
	createdBy := req.CreatedBy
	if createdBy == "" {
		if requester := RequesterFromContext(ctx); requester != nil {
			createdBy = requester.ID
		}
	}

	in := models.NewUser{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Roles:     toRoles(req.Roles),
		CreatedBy: &createdBy,
	}
	if err := validate.NewUser(&in); err != nil {
		return nil, toStatus(err)
	}

	u, err := h.users.Create(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.ProvisionedUser{User: toPBProfile(&u.UserProfile), Password: u.Password}, nil
}

func (h *usersHandler) FindAll(ctx context.Context, req *pb.FindAllRequest) (*pb.UserList, error) {
	page := models.Pagination{Page: int(req.Page), Limit: int(req.Limit)}
	if err := validate.Page(page); err != nil {
		return nil, toStatus(err)
	}

	if page.Page == 0 {
		page.Page = 1
	}
	if page.Limit == 0 {
		page.Limit = h.defaultPageLimit
	}

	list, err := h.users.FindAll(ctx, page, RequesterFromContext(ctx))
	if err != nil {
		return nil, toStatus(err)
	}

	return toPBList(list), nil
}

func (h *usersHandler) FindByID(ctx context.Context, req *pb.IDRequest) (*pb.UserProfile, error) {
	if err := validate.ID(req.Id); err != nil {
		return nil, toStatus(err)
	}
	return profile(h.users.FindOne(ctx, req.Id))
}

func (h *usersHandler) FindByUsername(ctx context.Context, req *pb.UsernameRequest) (*pb.UserProfile, error) {
	return profile(h.users.FindByUsernameOrEmail(ctx, validate.Normalize(req.Username), ""))
}

func (h *usersHandler) FindByEmail(ctx context.Context, req *pb.EmailRequest) (*pb.UserProfile, error) {
	return profile(h.users.FindByUsernameOrEmail(ctx, "", validate.Normalize(req.Email)))
}

func (h *usersHandler) FindMeta(ctx context.Context, req *pb.IDRequest) (*pb.UserProfile, error) {
	if err := validate.ID(req.Id); err != nil {
		return nil, toStatus(err)
	}
	return profile(h.users.FindOneWithMeta(ctx, req.Id))
}

func (h *usersHandler) FindSummary(ctx context.Context, req *pb.IDRequest) (*pb.UserSummary, error) {
	if err := validate.ID(req.Id); err != nil {
		return nil, toStatus(err)
	}

	s, err := h.users.FindOneWithSummary(ctx, req.Id)
	if err != nil {
		return nil, toStatus(err)
	}

	return toPBSummary(s), nil
}

func (h *usersHandler) FindSummaryBatch(ctx context.Context, req *pb.SummaryBatchRequest) (*pb.SummaryBatchResponse, error) {
	if err := validate.IDs(req.Ids); err != nil {
		return nil, toStatus(err)
	}

	users, err := h.users.FindSummary(ctx, req.Ids)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.SummaryBatchResponse{Users: toPBSummaries(users)}, nil
}

func (h *usersHandler) Update(ctx context.Context, req *pb.UpdateUserRequest) (*pb.UserProfile, error) {
	patch := models.UserPatch{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Roles:    patchRoles(req.Roles),
	}
	if err := validate.Patch(req.Id, &patch); err != nil {
		return nil, toStatus(err)
	}

	return profile(h.users.Update(ctx, req.Id, patch))
}

func (h *usersHandler) Remove(ctx context.Context, req *pb.IDRequest) (*pb.UserProfile, error) {
	if err := validate.ID(req.Id); err != nil {
		return nil, toStatus(err)
	}
	return profile(h.users.Remove(ctx, req.Id))
}

func (h *usersHandler) Restore(ctx context.Context, req *pb.IDRequest) (*pb.UserProfile, error) {
	if err := validate.ID(req.Id); err != nil {
		return nil, toStatus(err)
	}
	return profile(h.users.Restore(ctx, req.Id))
}

// profile converts the result of a service call into its wire form.
func profile(p *models.UserProfile, err error) (*pb.UserProfile, error) {
	if err != nil {
		return nil, toStatus(err)
	}
	return toPBProfile(p), nil
}
