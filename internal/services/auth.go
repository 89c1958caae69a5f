package services

import (
  "context"
  "fmt"
  "time"

  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "golang.org/x/crypto/bcrypt"
  "gorm.io/gorm"

  "github.com/yungbote/pubshare-backend/internal/apierr"
  "github.com/yungbote/pubshare-backend/internal/logger"
  "github.com/yungbote/pubshare-backend/internal/normalization"
  "github.com/yungbote/pubshare-backend/internal/repos"
  "github.com/yungbote/pubshare-backend/internal/requestdata"
  "github.com/yungbote/pubshare-backend/internal/types"
  "github.com/yungbote/pubshare-backend/internal/utils"
)

type AuthService interface {
  RegisterUser(ctx context.Context, user *types.User) error
  LoginUser(ctx context.Context, email, password string) (string, string, error)
  RefreshUser(ctx context.Context, refreshToken string) (string, string, error)
  LogoutUser(ctx context.Context) error
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
  GetAccessTTL() time.Duration
}

type authService struct {
  db            *gorm.DB
  log           *logger.Logger
  userRepo      repos.UserRepo
  userTokenRepo repos.UserTokenRepo
  jwtSecretKey  string
  accessTTL     time.Duration
  refreshTTL    time.Duration
}

func NewAuthService(
  db *gorm.DB,
  baseLog *logger.Logger,
  userRepo repos.UserRepo,
  userTokenRepo repos.UserTokenRepo,
  jwtSecretKey string,
  accessTTL time.Duration,
  refreshTTL time.Duration,
) AuthService {
  serviceLog := baseLog.With("service", "AuthService")
  return &authService{
    db:            db,
    log:           serviceLog,
    userRepo:      userRepo,
    userTokenRepo: userTokenRepo,
    jwtSecretKey:  jwtSecretKey,
    accessTTL:     accessTTL,
    refreshTTL:    refreshTTL,
  }
}

func (as *authService) GetAccessTTL() time.Duration {
  return as.accessTTL
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) error {
  utils.NormalizeUserFields(user)
  if err := utils.ValidateRegistration(ctx, as.userRepo, user); err != nil {
    return err
  }
  if err := utils.HashPassword(user); err != nil {
    return err
  }
  return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    user.ID = uuid.New()
    if user.Role == "" {
      user.Role = types.RoleBasic
    }
    if _, err := as.userRepo.Create(ctx, tx, []*types.User{user}); err != nil {
      return fmt.Errorf("create user: %w", err)
    }
    return nil
  })
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
  email = normalization.ParseInputString(email)
  if err := utils.ValidateLogin(email, password); err != nil {
    return "", "", err
  }

  users, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
  if err != nil {
    return "", "", fmt.Errorf("retrieve user by email: %w", err)
  }
  if len(users) == 0 {
    return "", "", apierr.Unauthorized("invalid_credentials", fmt.Errorf("invalid email"))
  }

  user := users[0]
  if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
    return "", "", apierr.Unauthorized("invalid_credentials", fmt.Errorf("invalid password"))
  }

  var accessToken string
  var refreshToken string
  err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    foundTokens, err := as.userTokenRepo.GetByUserIDs(ctx, tx, []uuid.UUID{user.ID})
    if err != nil {
      return fmt.Errorf("check user tokens: %w", err)
    }
    expiredIDs := []uuid.UUID{}
    for _, tok := range foundTokens {
      if tok != nil && !tok.ExpiresAt.After(time.Now()) {
        expiredIDs = append(expiredIDs, tok.ID)
      }
    }
    if err := as.userTokenRepo.FullDeleteByIDs(ctx, tx, expiredIDs); err != nil {
      return fmt.Errorf("delete expired user tokens: %w", err)
    }

    tok, err := as.generateAccessToken(user)
    if err != nil {
      return fmt.Errorf("generate access token: %w", err)
    }
    accessToken = tok
    refreshToken = uuid.New().String()
    userToken := &types.UserToken{
      ID:           uuid.New(),
      UserID:       user.ID,
      AccessToken:  accessToken,
      RefreshToken: refreshToken,
      ExpiresAt:    time.Now().Add(as.refreshTTL),
    }
    if _, err := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{userToken}); err != nil {
      return fmt.Errorf("create user token: %w", err)
    }
    return nil
  })
  if err != nil {
    return "", "", err
  }
  return accessToken, refreshToken, nil
}

func (as *authService) RefreshUser(ctx context.Context, refreshToken string) (string, string, error) {
  tokens, err := as.userTokenRepo.GetByRefreshTokens(ctx, nil, []string{refreshToken})
  if err != nil {
    return "", "", fmt.Errorf("look up refresh token: %w", err)
  }
  if len(tokens) == 0 {
    return "", "", apierr.Unauthorized("invalid_refresh_token", fmt.Errorf("unknown refresh token"))
  }
  stored := tokens[0]
  if !stored.ExpiresAt.After(time.Now()) {
    return "", "", apierr.Unauthorized("refresh_token_expired", fmt.Errorf("refresh token expired"))
  }

  user, err := as.userRepo.GetByID(ctx, nil, stored.UserID)
  if err != nil {
    return "", "", fmt.Errorf("load token user: %w", err)
  }

  var accessToken string
  var newRefreshToken string
  err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if err := as.userTokenRepo.FullDeleteByIDs(ctx, tx, []uuid.UUID{stored.ID}); err != nil {
      return fmt.Errorf("rotate out old token: %w", err)
    }
    tok, err := as.generateAccessToken(user)
    if err != nil {
      return fmt.Errorf("generate access token: %w", err)
    }
    accessToken = tok
    newRefreshToken = uuid.New().String()
    userToken := &types.UserToken{
      ID:           uuid.New(),
      UserID:       user.ID,
      AccessToken:  accessToken,
      RefreshToken: newRefreshToken,
      ExpiresAt:    time.Now().Add(as.refreshTTL),
    }
    if _, err := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{userToken}); err != nil {
      return fmt.Errorf("create rotated token: %w", err)
    }
    return nil
  })
  if err != nil {
    return "", "", err
  }
  return accessToken, newRefreshToken, nil
}

func (as *authService) LogoutUser(ctx context.Context) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return apierr.Unauthorized("not_logged_in", fmt.Errorf("no request identity"))
  }
  return as.userTokenRepo.FullDeleteByUserIDs(ctx, nil, []uuid.UUID{rd.UserID})
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  claims := jwt.MapClaims{}
  parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
    if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
    }
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil || !parsed.Valid {
    return ctx, apierr.Unauthorized("invalid_token", fmt.Errorf("invalid access token"))
  }

  rawUserID, _ := claims["user_id"].(string)
  userID, err := uuid.Parse(rawUserID)
  if err != nil {
    return ctx, apierr.Unauthorized("invalid_token", fmt.Errorf("token missing user id"))
  }
  role, _ := claims["role"].(string)

  stored, err := as.userTokenRepo.GetByAccessTokens(ctx, nil, []string{tokenString})
  if err != nil {
    return ctx, fmt.Errorf("look up access token: %w", err)
  }
  if len(stored) == 0 {
    return ctx, apierr.Unauthorized("token_revoked", fmt.Errorf("access token not active"))
  }

  rd := &requestdata.RequestData{
    TokenString:  tokenString,
    RefreshToken: stored[0].RefreshToken,
    UserID:       userID,
    Role:         role,
  }
  return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
  now := time.Now()
  claims := jwt.MapClaims{
    "user_id": user.ID.String(),
    "role":    user.Role,
    "iat":     now.Unix(),
    "exp":     now.Add(as.accessTTL).Unix(),
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  signed, err := token.SignedString([]byte(as.jwtSecretKey))
  if err != nil {
    return "", fmt.Errorf("sign access token: %w", err)
  }
  return signed, nil
}
